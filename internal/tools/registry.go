package tools

import (
	"fmt"
	"sort"

	"github.com/kontentmcp/kontentmcp/internal/response"
	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// Registry holds a set of named tools and exposes them for execution.
type Registry struct {
	tools map[string]schema.Tool
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name ToolName) schema.Tool {
	return r.tools[string(name)]
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for k := range r.tools {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AllTools returns a copy of the registered tools.
func (r *Registry) AllTools() *ToolList {
	list := &ToolList{tools: make(map[string]schema.Tool, len(r.tools))}
	for k, t := range r.tools {
		list.tools[k] = t
	}
	return list
}

// Options configure NewRegistry.
type Options struct {
	Clients   ClientFactory
	Responder *response.Responder
	// Validate checks arguments against each tool's input schema first.
	Validate bool
	// Enabled filters tools by name; nil enables all.
	Enabled func(name string) bool
	Poll    PollSettings
}

// NewRegistry builds a registry holding every catalogue tool Enabled allows.
func NewRegistry(opts Options) (*Registry, error) {
	b := NewRegistryBuilder(opts)
	for _, def := range Catalogue() {
		b.WithDefinition(def)
	}
	return b.Build()
}

// Catalogue returns the definitions of every tool.
func Catalogue() []Definition {
	groups := [][]Definition{
		itemTools(),
		variantTools(),
		workflowStepTools(),
		searchTools(),
		contentTypeTools(),
		snippetTools(),
		taxonomyTools(),
		languageTools(),
		assetTools(),
		collectionTools(),
		spaceTools(),
		workflowTools(),
		roleTools(),
		webhookTools(),
		guideTools(),
	}
	var all []Definition
	seen := make(map[ToolName]bool)
	for _, g := range groups {
		for _, d := range g {
			if seen[d.Name] {
				panic(fmt.Sprintf("tools: duplicate tool %s", d.Name))
			}
			seen[d.Name] = true
			all = append(all, d)
		}
	}
	return all
}
