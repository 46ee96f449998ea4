package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/tokenlens/pkg/match"
	"github.com/gnana997/tokenlens/pkg/tokens"
)

// themeFromRequest resolves the optional "theme" argument to a Theme.
// Returns an error result when the named theme does not exist.
func (s *Server) themeFromRequest(req mcp.CallToolRequest) (*tokens.Theme, *mcp.CallToolResult) {
	name := req.GetString("theme", "")
	if name == "" {
		return nil, nil
	}
	theme, ok := tokens.FindTheme(s.themes, name)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf("unknown theme: %s", name))
	}
	return theme, nil
}

// observedFromRequest parses the required "values" argument.
func observedFromRequest(req mcp.CallToolRequest) ([]match.ObservedValue, *mcp.CallToolResult) {
	raw, err := req.RequireString("values")
	if err != nil {
		return nil, mcp.NewToolResultError("values is required")
	}
	var observed []match.ObservedValue
	if err := json.Unmarshal([]byte(raw), &observed); err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("invalid values JSON: %v", err))
	}
	return observed, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleResolveTokens(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	theme, errResult := s.themeFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	resolved, summary := s.auditor.Resolve(s.raw, theme)
	return jsonResult(map[string]any{
		"tokens":  resolved,
		"summary": summary,
	})
}

func (s *Server) handleListThemes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if len(s.themes) == 0 {
		return mcp.NewToolResultText("no themes defined"), nil
	}
	return jsonResult(s.themes)
}

func (s *Server) handleMatchValues(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	observed, errResult := observedFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}
	theme, errResult := s.themeFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	resolved, _ := s.auditor.Resolve(s.raw, theme)
	result := match.Values(observed, resolved, s.log)
	return jsonResult(result)
}

func (s *Server) handleAuditValues(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	observed, errResult := observedFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}
	theme, errResult := s.themeFromRequest(req)
	if errResult != nil {
		return errResult, nil
	}

	report := s.auditor.Audit(s.raw, theme, observed)
	return jsonResult(report)
}

func (s *Server) handleCleanName(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil
	}
	return mcp.NewToolResultText(tokens.CleanName(path)), nil
}
