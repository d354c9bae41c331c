package tools

import (
	"encoding/json"
	"sort"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

// ToolList holds a named set of tools.
type ToolList struct {
	tools map[string]schema.Tool
}

func NewToolList(ts ...schema.Tool) *ToolList {
	list := ToolList{tools: make(map[string]schema.Tool, len(ts))}
	for _, t := range ts {
		list.tools[t.Name()] = t
	}

	return &list
}

// Get returns the tool with the given name, or nil if not found.
func (r *ToolList) Get(name string) schema.Tool {
	return r.tools[name]
}

// Add registers a new tool, replacing any existing tool with the same name.
func (r *ToolList) Add(t schema.Tool) schema.Tool {
	r.tools[t.Name()] = t

	return t
}

// Sorted returns the tools ordered by name.
func (r *ToolList) Sorted() []schema.Tool {
	list := make([]schema.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Definitions returns all tool definitions in MCP tools/list format.
func (r *ToolList) Definitions() []map[string]any {
	sorted := r.Sorted()
	list := make([]map[string]any, 0, len(sorted))
	for _, t := range sorted {
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		list = append(list, map[string]any{
			"name":        t.Name(),
			"description": t.Description(),
			"inputSchema": params,
		})
	}
	return list
}
