// Package schema holds the tool contract and the JSON Schema documents that
// describe tool inputs.
package schema

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is the interface every MCP-callable tool satisfies.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	// Execute runs the tool. Failures are reported as error results; the
	// returned error is reserved for calls that cannot be answered at all.
	Execute(ctx context.Context, params map[string]any) (*mcp.CallToolResult, error)
}
