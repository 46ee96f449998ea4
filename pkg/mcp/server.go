package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/tokenlens/pkg/audit"
	"github.com/gnana997/tokenlens/pkg/tokens"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for tokenlens, exposing token resolution
// and value-matching tools over stdio.
type Server struct {
	mcpServer *server.MCPServer
	auditor   *audit.Auditor
	raw       map[string]any
	themes    []tokens.Theme
	log       *slog.Logger
}

// NewServer creates an MCP server over the given raw token tree.
func NewServer(auditor *audit.Auditor, raw map[string]any, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	s := &Server{
		auditor: auditor,
		raw:     raw,
		themes:  tokens.ParseThemes(raw),
		log:     log,
	}

	s.mcpServer = server.NewMCPServer(
		"tokenlens",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: resolveTokensTool(), Handler: s.handleResolveTokens},
		server.ServerTool{Tool: listThemesTool(), Handler: s.handleListThemes},
		server.ServerTool{Tool: matchValuesTool(), Handler: s.handleMatchValues},
		server.ServerTool{Tool: auditValuesTool(), Handler: s.handleAuditValues},
		server.ServerTool{Tool: cleanNameTool(), Handler: s.handleCleanName},
	)

	return s
}

// SetTree replaces the raw token tree, e.g. after a watched file changed.
// Cached resolutions are invalidated.
func (s *Server) SetTree(raw map[string]any) {
	s.raw = raw
	s.themes = tokens.ParseThemes(raw)
	s.auditor.Invalidate()
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
