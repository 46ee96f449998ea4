package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware records every tool call with its duration and outcome
// via the server's structured logger.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			if err != nil {
				s.log.Error("tool call failed", "tool", req.Params.Name, "ms", elapsed, "error", err)
			} else {
				s.log.Debug("tool call", "tool", req.Params.Name, "ms", elapsed)
			}

			return result, err
		}
	}
}
