package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/cors"

	serverconfig "github.com/kontentmcp/kontentmcp/internal/config/server"
	"github.com/kontentmcp/kontentmcp/internal/kontent"
)

const shutdownTimeout = 10 * time.Second

func withCredentials(ctx context.Context, r *http.Request) context.Context {
	if c, ok := requestCredentials(r); ok {
		return kontent.WithCredentials(ctx, c)
	}
	return ctx
}

// Handler routes the HTTP transport selected by cfg.Transport.
func Handler(s *mcpserver.MCPServer, cfg serverconfig.ServerConfig) (http.Handler, error) {
	r := mux.NewRouter()
	scoped := alice.New(requireEnvironment)
	authed := scoped.Append(requireBearer)

	switch cfg.Transport {
	case serverconfig.TransportStreamableHTTP:
		h := mcpserver.NewStreamableHTTPServer(s,
			mcpserver.WithStateLess(true),
			mcpserver.WithHTTPContextFunc(withCredentials),
		)
		r.Handle("/mcp", h).Methods(http.MethodPost)
		r.Handle("/{environmentId}/mcp", authed.Then(h)).Methods(http.MethodPost)
		r.HandleFunc("/mcp", methodNotAllowed).Methods(http.MethodGet, http.MethodDelete)
		r.HandleFunc("/{environmentId}/mcp", methodNotAllowed).Methods(http.MethodGet, http.MethodDelete)

	case serverconfig.TransportSSE:
		h := mcpserver.NewSSEServer(s,
			mcpserver.WithSSEContextFunc(withCredentials),
			mcpserver.WithDynamicBasePath(func(r *http.Request, _ string) string {
				if env := mux.Vars(r)[environmentVar]; env != "" {
					return "/" + env
				}
				return ""
			}),
		)
		r.Handle("/sse", h.SSEHandler()).Methods(http.MethodGet)
		r.Handle("/message", h.MessageHandler()).Methods(http.MethodPost)
		r.Handle("/{environmentId}/sse", scoped.Then(h.SSEHandler())).Methods(http.MethodGet)
		r.Handle("/{environmentId}/message", authed.Then(h.MessageHandler())).Methods(http.MethodPost)

	default:
		return nil, fmt.Errorf("transport %q is not served over HTTP", cfg.Transport)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
	})
	return alice.New(logRequests, c.Handler).Then(r), nil
}

// logRequests logs each request at debug level.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("http request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

// ListenAndServe serves h on cfg's address until ctx is done.
func ListenAndServe(ctx context.Context, cfg serverconfig.ServerConfig, h http.Handler) error {
	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening", "transport", cfg.Transport, "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
