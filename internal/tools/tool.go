package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
	"github.com/kontentmcp/kontentmcp/internal/response"
	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// Shape selects how a tool's payload is rendered.
type Shape int

const (
	// ShapeGeneric prunes empty values.
	ShapeGeneric Shape = iota
	// ShapeVariant also drops variant elements left with nothing but their
	// element reference.
	ShapeVariant
)

// ClientFactory returns the API client for the call in ctx. HTTP transports
// can carry per-request credentials in ctx.
type ClientFactory func(ctx context.Context) (kontent.Doer, error)

// PollSettings bound waiting for asynchronous operations.
type PollSettings struct {
	Attempts int
	Initial  time.Duration
	Max      time.Duration
}

// DefaultPollSettings waits up to ten times, starting at one second and
// growing by half each time up to ten seconds.
func DefaultPollSettings() PollSettings {
	return PollSettings{Attempts: 10, Initial: time.Second, Max: 10 * time.Second}
}

// Call is what a tool's run function receives.
type Call struct {
	API  kontent.Doer
	Args Args
	Poll PollSettings
}

// RunFunc performs the tool's work and returns the payload to report.
type RunFunc func(ctx context.Context, c Call) (any, error)

// Definition describes one tool.
type Definition struct {
	Name        ToolName
	Description string
	Input       schema.Schema
	Shape       Shape
	// Operation names the action in error results, e.g. "Content Type Retrieval".
	Operation string
	// Offline tools never talk to Kontent.ai and get no client.
	Offline bool
	Run     RunFunc
}

// Failure is an expected failure reported with its own wording instead of
// the underlying error.
type Failure struct {
	Operation string
	Message   string
}

func (f *Failure) Error() string { return f.Operation + ": " + f.Message }

// kontentTool adapts a Definition to schema.Tool.
type kontentTool struct {
	def       Definition
	params    json.RawMessage
	validator *schema.Validator
	clients   ClientFactory
	responder *response.Responder
	poll      PollSettings
}

func newKontentTool(def Definition, opts Options) (*kontentTool, error) {
	params := def.Input.JSON()
	t := &kontentTool{
		def:       def,
		params:    params,
		clients:   opts.Clients,
		responder: opts.Responder,
		poll:      opts.Poll,
	}
	if t.responder == nil {
		t.responder = response.NewResponder(nil, false)
	}
	if opts.Validate {
		v, err := schema.Compile(params)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", def.Name, err)
		}
		t.validator = v
	}
	return t, nil
}

func (t *kontentTool) Name() string                { return string(t.def.Name) }
func (t *kontentTool) Description() string         { return t.def.Description }
func (t *kontentTool) Parameters() json.RawMessage { return t.params }

// Definition exposes the underlying tool definition.
func (t *kontentTool) Definition() Definition { return t.def }

func (t *kontentTool) Execute(ctx context.Context, params map[string]any) (*mcp.CallToolResult, error) {
	op := t.def.Operation
	if t.validator != nil {
		if err := t.validator.Validate(params); err != nil {
			return response.Error(err, op), nil
		}
	}

	call := Call{Args: Args(params), Poll: t.poll}
	if !t.def.Offline {
		if t.clients == nil {
			return response.Errorf(op, "no Kontent.ai client configured"), nil
		}
		api, err := t.clients(ctx)
		if err != nil {
			return response.Error(err, op), nil
		}
		call.API = api
	}

	start := time.Now()
	data, err := t.def.Run(ctx, call)
	if err != nil {
		slog.Warn("tool failed", "tool", t.def.Name, "took", time.Since(start), "err", err)
		var f *Failure
		if errors.As(err, &f) {
			return response.Errorf(f.Operation, "%s", f.Message), nil
		}
		return response.Error(err, op), nil
	}
	slog.Debug("tool done", "tool", t.def.Name, "took", time.Since(start))

	if t.def.Shape == ShapeVariant {
		return t.responder.Variant(data), nil
	}
	return t.responder.Success(data), nil
}
