// Package container wires core kontentmcp services using go.uber.org/dig.
package container

import (
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/dig"

	"github.com/kontentmcp/kontentmcp/internal/config"
	"github.com/kontentmcp/kontentmcp/internal/kontent"
	"github.com/kontentmcp/kontentmcp/internal/normalize"
	"github.com/kontentmcp/kontentmcp/internal/probe"
	"github.com/kontentmcp/kontentmcp/internal/response"
	"github.com/kontentmcp/kontentmcp/internal/server"
	"github.com/kontentmcp/kontentmcp/internal/tools"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	registry *tools.Registry
	server   *mcpserver.MCPServer
	clients  *kontent.Factory
	probes   *probe.Manager
}

func (c *Container) Registry() *tools.Registry       { return c.registry }
func (c *Container) MCPServer() *mcpserver.MCPServer { return c.server }
func (c *Container) Clients() *kontent.Factory       { return c.clients }
func (c *Container) ProbeManager() *probe.Manager    { return c.probes }

// appVersion is a named string type so dig can tell the version apart from
// other strings.
type appVersion string

// New builds and wires all services from cfg.
func New(cfg *config.Config, version string) (*Container, error) {
	d := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		func() appVersion { return appVersion(version) },
		newNormalizer,
		newResponder,
		newClientFactory,
		newRegistry,
		newMCPServer,
		newProbeManager,
	}
	for _, p := range providers {
		if err := d.Provide(p); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(
		reg *tools.Registry,
		s *mcpserver.MCPServer,
		clients *kontent.Factory,
		probes *probe.Manager,
	) {
		result = &Container{registry: reg, server: s, clients: clients, probes: probes}
	})
	return result, err
}

func newNormalizer(cfg *config.Config) *normalize.Normalizer {
	return normalize.New(cfg.Response.EmptySentinels...)
}

func newResponder(cfg *config.Config, n *normalize.Normalizer) *response.Responder {
	return response.NewResponder(n, cfg.Response.Indent)
}

func newClientFactory(cfg *config.Config, v appVersion) *kontent.Factory {
	k := cfg.Kontent
	timeout := time.Duration(k.TimeoutSeconds) * time.Second
	return kontent.NewFactory(kontent.Options{
		EnvironmentID: k.EnvironmentID,
		APIKey:        k.APIKey,
		ManageURL:     k.ManageAPIURL,
		DeliveryURL:   k.DeliveryAPIURL,
		Source:        "kontentmcp;" + string(v),
		Timeout:       timeout,
		MaxRetries:    k.MaxRetries,
		MaxRetryWait:  time.Duration(k.MaxRetryWaitSeconds) * time.Second,
		Headers:       k.Headers,
		// One transport shared by every per-request client.
		HTTPClient: &http.Client{Timeout: timeout},
	})
}

func newRegistry(cfg *config.Config, r *response.Responder, clients *kontent.Factory) (*tools.Registry, error) {
	poll := tools.DefaultPollSettings()
	if cfg.Tools.SearchPollAttempts > 0 {
		poll.Attempts = cfg.Tools.SearchPollAttempts
	}
	return tools.NewRegistry(tools.Options{
		Clients:   clients.Client,
		Responder: r,
		Validate:  cfg.Tools.ValidateInput,
		Enabled:   cfg.ToolEnabled,
		Poll:      poll,
	})
}

func newMCPServer(reg *tools.Registry, v appVersion) *mcpserver.MCPServer {
	return server.New(reg, string(v))
}

func newProbeManager(cfg *config.Config) *probe.Manager {
	return probe.NewManager(cfg.Tools.Probe)
}
