package tools

import (
	"fmt"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// RegistryBuilder turns definitions into tools during startup.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	opts  Options
	tools map[string]schema.Tool
	err   error
}

// NewRegistryBuilder returns a builder whose tools share opts.
func NewRegistryBuilder(opts Options) *RegistryBuilder {
	if opts.Poll.Attempts <= 0 {
		opts.Poll = DefaultPollSettings()
	}
	return &RegistryBuilder{opts: opts, tools: make(map[string]schema.Tool)}
}

// WithDefinition adds the tool described by def unless opts.Enabled rejects
// it. The first failure is kept and reported by Build.
func (b *RegistryBuilder) WithDefinition(def Definition) *RegistryBuilder {
	if b.err != nil {
		return b
	}
	if b.opts.Enabled != nil && !b.opts.Enabled(string(def.Name)) {
		return b
	}
	t, err := newKontentTool(def, b.opts)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithTool(t)
}

// WithTool adds a ready-made tool. Names must be unique.
func (b *RegistryBuilder) WithTool(tool schema.Tool) *RegistryBuilder {
	if b.err != nil {
		return b
	}
	if _, dup := b.tools[tool.Name()]; dup {
		b.err = fmt.Errorf("duplicate tool %s", tool.Name())
		return b
	}
	b.tools[tool.Name()] = tool
	return b
}

// Build produces an immutable Registry from the accumulated tools.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	tools := make(map[string]schema.Tool, len(b.tools))
	for k, v := range b.tools {
		tools[k] = v
	}
	return &Registry{tools: tools}, nil
}
