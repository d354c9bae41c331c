package probe

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// remoteTool exposes a tool discovered on a server as a schema.Tool.
type remoteTool struct {
	client *Client
	tool   mcp.Tool
}

func (w *remoteTool) Name() string        { return w.tool.Name }
func (w *remoteTool) Description() string { return w.tool.Description }

func (w *remoteTool) Parameters() json.RawMessage {
	if len(w.tool.RawInputSchema) > 0 {
		return w.tool.RawInputSchema
	}
	raw, err := json.Marshal(w.tool.InputSchema)
	if err != nil {
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return raw
}

func (w *remoteTool) Execute(ctx context.Context, params map[string]any) (*mcp.CallToolResult, error) {
	return w.client.CallTool(ctx, w.tool.Name, params)
}

var _ schema.Tool = (*remoteTool)(nil)
