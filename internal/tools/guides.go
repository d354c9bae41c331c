package tools

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

var (
	//go:embed guides/initial_context.md
	initialContext string

	//go:embed guides/patch_overview.md
	patchOverview string
	//go:embed guides/patch_path.md
	patchPathGuide string
	//go:embed guides/patch_reference.md
	patchReferenceGuide string
	//go:embed guides/patch_property.md
	patchPropertyGuide string
)

// patchGuides maps each patchable entity to the guide for its addressing style.
var patchGuides = map[string]*string{
	"content-type":  &patchPathGuide,
	"snippet":       &patchPathGuide,
	"taxonomy":      &patchReferenceGuide,
	"asset-folders": &patchReferenceGuide,
	"collections":   &patchReferenceGuide,
	"language":      &patchPropertyGuide,
	"space":         &patchPropertyGuide,
}

// InitialContext is the orientation text served as server instructions.
func InitialContext() string { return initialContext }

func patchEntities() []string {
	names := make([]string, 0, len(patchGuides))
	for k := range patchGuides {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func guideTools() []Definition {
	return []Definition{
		{
			Name:        ToolGetPatchGuide,
			Description: "REQUIRED before any patch operation. Get patch operations guide for Kontent.ai Management API.",
			Input: schema.Object(schema.Props{
				"entity": schema.Enum(patchEntities()...).
					Describe("Entity to patch. Omit to get the overview of all patch styles."),
			}),
			Operation: "Patch Guide Retrieval",
			Offline:   true,
			Run:       patchGuide,
		},
		{
			Name: ToolGetInitialContext,
			Description: "Get the Kontent.ai orientation: how items, variants, types and workflows relate " +
				"and which tools to use. Call it before anything else.",
			Input:     schema.Empty(),
			Operation: "Initial Context Retrieval",
			Offline:   true,
			Run: func(context.Context, Call) (any, error) {
				return initialContext, nil
			},
		},
	}
}

func patchGuide(_ context.Context, c Call) (any, error) {
	entity := c.Args.String("entity")
	if entity == "" {
		return patchOverview, nil
	}
	guide, ok := patchGuides[entity]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q", entity)
	}
	return *guide, nil
}
