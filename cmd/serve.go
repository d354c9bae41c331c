package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kontentmcp/kontentmcp/internal/config"
	serverconfig "github.com/kontentmcp/kontentmcp/internal/config/server"
	"github.com/kontentmcp/kontentmcp/internal/container"
	"github.com/kontentmcp/kontentmcp/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:       "serve [stdio|sse|shttp]",
	Short:     "Start the MCP server",
	Long:      "Start the MCP server. The transport defaults to server.transport from the config (stdio).",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{serverconfig.TransportStdio, serverconfig.TransportSSE, serverconfig.TransportStreamableHTTP},
	RunE:      runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host for HTTP transports")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port for HTTP transports")
}

func runServe(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Server.Transport = args[0]
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	return serve(cfg)
}

func serve(cfg *config.Config) error {
	c, err := container.New(cfg, version)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	slog.Info("tools registered", "count", len(c.Registry().Names()), "transport", cfg.Server.Transport)
	if cfg.Server.Transport == serverconfig.TransportStdio && cfg.Kontent.EnvironmentID == "" {
		slog.Warn("no Kontent.ai environment configured; set KONTENT_ENVIRONMENT_ID and KONTENT_API_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	switch cfg.Server.Transport {
	case serverconfig.TransportStdio:
		g.Go(func() error { return server.ServeStdio(gctx, c.MCPServer(), os.Stdin, os.Stdout) })
	case serverconfig.TransportSSE, serverconfig.TransportStreamableHTTP:
		h, err := server.Handler(c.MCPServer(), cfg.Server)
		if err != nil {
			return err
		}
		g.Go(func() error { return server.ListenAndServe(gctx, cfg.Server, h) })
	default:
		return fmt.Errorf("unknown transport %q (want stdio, sse or shttp)", cfg.Server.Transport)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
