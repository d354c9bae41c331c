// Package server exposes the tool registry over the Model Context Protocol:
// stdio, SSE and stateless streamable HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kontentmcp/kontentmcp/internal/response"
	"github.com/kontentmcp/kontentmcp/internal/schema"
	"github.com/kontentmcp/kontentmcp/internal/tools"
)

// Name is the MCP server name announced during initialize.
const Name = "kontent-ai"

// New builds an MCP server exposing every tool in reg.
func New(reg *tools.Registry, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		Name,
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(tools.InitialContext()),
	)

	for _, t := range reg.AllTools().Sorted() {
		s.AddTool(mcp.NewToolWithRawSchema(t.Name(), t.Description(), t.Parameters()), handler(t))
	}
	slog.Debug("MCP tools registered", "count", len(reg.Names()))
	return s
}

func handler(t schema.Tool) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := t.Execute(ctx, req.GetArguments())
		if err != nil {
			return response.Error(fmt.Errorf("execute %s: %w", t.Name(), err), "Tool Execution"), nil
		}
		return res, nil
	}
}
