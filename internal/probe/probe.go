package probe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	toolcfg "github.com/kontentmcp/kontentmcp/internal/config/tool"
	"github.com/kontentmcp/kontentmcp/internal/schema"
	"github.com/kontentmcp/kontentmcp/internal/tools"
)

// Session is a connected server with its discovered tools.
type Session struct {
	Name   string
	Tools  *tools.ToolList
	Took   time.Duration
	client *Client
}

// Manager owns connections to the configured probe targets.
type Manager struct {
	targets map[string]toolcfg.MCPServerConfig
	mu      sync.Mutex
	clients []*Client
}

// NewManager returns a Manager for the given targets.
func NewManager(targets map[string]toolcfg.MCPServerConfig) *Manager {
	return &Manager{targets: targets}
}

// Targets returns the configured targets.
func (m *Manager) Targets() map[string]toolcfg.MCPServerConfig { return m.targets }

// Open connects to target name (or to cfg when name is not configured) and
// lists its tools.
func (m *Manager) Open(ctx context.Context, name string, cfg toolcfg.MCPServerConfig) (*Session, error) {
	start := time.Now()
	c := NewClient(name, cfg)
	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.clients = append(m.clients, c)
	m.mu.Unlock()

	found, err := c.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	s := &Session{Name: name, Tools: tools.NewToolList(), client: c, Took: time.Since(start)}
	for _, t := range found {
		s.Tools.Add(&remoteTool{client: c, tool: t})
		slog.Debug("MCP tool discovered", "server", name, "tool", t.Name)
	}
	slog.Info("MCP server connected", "server", name, "tools", len(found), "took", s.Took)
	return s, nil
}

// Tool returns the discovered tool called name, or nil.
func (s *Session) Tool(name string) schema.Tool {
	return s.Tools.Get(name)
}

// Close stops all subprocess-based servers owned by this manager.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		c.Close()
	}
	m.clients = nil
}
