// Package probe is a small MCP client used to smoke-test a running server:
// a spawned stdio command, an SSE endpoint or a streamable HTTP endpoint.
package probe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"

	toolcfg "github.com/kontentmcp/kontentmcp/internal/config/tool"
)

const clientName = "kontentmcp-probe"

// Client is one connection to an MCP server.
type Client struct {
	name string
	cfg  toolcfg.MCPServerConfig
	mc   *mcpclient.Client
}

// NewClient returns an unconnected client for cfg.
func NewClient(name string, cfg toolcfg.MCPServerConfig) *Client {
	return &Client{name: name, cfg: cfg}
}

// Connect opens the transport and runs the initialize handshake. A URL whose
// path ends in /sse is reached over SSE, any other URL over streamable HTTP.
func (c *Client) Connect(ctx context.Context) error {
	mc, err := c.dial(ctx)
	if err != nil {
		return err
	}
	c.mc = mc

	init := mcp.InitializeRequest{}
	init.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	init.Params.ClientInfo = mcp.Implementation{Name: clientName, Version: "1.0"}
	if _, err := mc.Initialize(ctx, init); err != nil {
		c.Close()
		return fmt.Errorf("initialize: %w", err)
	}
	return nil
}

func (c *Client) dial(ctx context.Context) (*mcpclient.Client, error) {
	switch {
	case c.cfg.Command != "":
		mc, err := mcpclient.NewStdioMCPClient(c.cfg.Command, envList(c.cfg.Env), c.cfg.Args...)
		if err != nil {
			return nil, fmt.Errorf("start MCP server %q: %w", c.name, err)
		}
		if stderr, ok := mcpclient.GetStderr(mc); ok {
			go io.Copy(os.Stderr, stderr) //nolint:errcheck
		}
		return mc, nil

	case c.cfg.URL != "":
		var (
			mc  *mcpclient.Client
			err error
		)
		if isSSE(c.cfg.URL) {
			mc, err = mcpclient.NewSSEMCPClient(c.cfg.URL, transport.WithHeaders(c.cfg.Headers))
		} else {
			mc, err = mcpclient.NewStreamableHttpClient(c.cfg.URL, transport.WithHTTPHeaders(c.cfg.Headers))
		}
		if err != nil {
			return nil, fmt.Errorf("MCP server %q: %w", c.name, err)
		}
		if err := mc.Start(ctx); err != nil {
			return nil, fmt.Errorf("connect %s: %w", c.cfg.URL, err)
		}
		return mc, nil

	default:
		return nil, fmt.Errorf("MCP server %q: no command or url configured", c.name)
	}
}

// Close ends the connection and stops a spawned server.
func (c *Client) Close() {
	if c.mc == nil {
		return
	}
	if err := c.mc.Close(); err != nil {
		slog.Debug("MCP client close", "server", c.name, "err", err)
	}
	c.mc = nil
}

// ListTools returns the tools exposed by the server.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.mc == nil {
		return nil, fmt.Errorf("MCP server %q: not connected", c.name)
	}
	res, err := c.mc.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("tools/list: %w", err)
	}
	return res.Tools, nil
}

// CallTool invokes a named tool with the given arguments.
func (c *Client) CallTool(ctx context.Context, toolName string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.mc == nil {
		return nil, fmt.Errorf("MCP server %q: not connected", c.name)
	}
	req := mcp.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	res, err := c.mc.CallTool(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tools/call %s: %w", toolName, err)
	}
	return res, nil
}

// Text joins the text blocks of a tool result.
func Text(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	var parts []string
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			parts = append(parts, tc.Text)
		case *mcp.TextContent:
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func isSSE(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.HasSuffix(strings.TrimSuffix(u.Path, "/"), "/sse")
}

// envList renders env as sorted KEY=value pairs; the subprocess inherits the
// current environment as well.
func envList(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
