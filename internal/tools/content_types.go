package tools

import (
	"fmt"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

const patchGuideHint = " Call get-patch-guide first for operations reference."

func contentTypeTools() []Definition {
	return []Definition{
		{
			Name:        ToolListContentTypes,
			Description: "Get all Kontent.ai content types",
			Input:       schema.Empty(),
			Operation:   "Content Types Listing",
			Run:         listAllTool("types", "types"),
		},
		{
			Name: ToolGetType,
			Description: "Get Kontent.ai content type. Types define variant structure: field definitions, " +
				"validation rules, and element types.",
			Input:     idInput("id", "Content type ID"),
			Operation: "Content Type Retrieval",
			Run:       getTool("types/%s", "id"),
		},
		{
			Name:        ToolAddContentType,
			Description: "Add new Kontent.ai content type via Management API",
			Input:       schema.Object(schema.ContentTypeInput(), "name", "elements"),
			Operation:   "Content Type Creation",
			Run:         createTool("types", "name", "codename", "external_id", "content_groups", "elements"),
		},
		{
			Name:        ToolPatchContentType,
			Description: "Update Kontent.ai content type using patch operations." + patchGuideHint,
			Input: schema.Object(schema.Props{
				"id": schema.String().Describe("Content type ID"),
				"operations": schema.ContentTypePatchOperations().Describe("Patch operations array. " +
					"Always call get-type-mapi first to learn the current structure."),
			}, "id", "operations"),
			Operation: "Content Type Patch",
			Run: patchTool("types/%s", "id", "contentType", func(_ string, n int) string {
				return fmt.Sprintf("Content type updated successfully with %s", nOps(n))
			}),
		},
		{
			Name:        ToolDeleteContentType,
			Description: "Delete Kontent.ai content type by codename",
			Input:       idInput("codename", "Codename of the content type to delete"),
			Operation:   "Content Type Deletion",
			Run:         deleteTool("types/codename/%s", "codename", "Content type", "deletedType"),
		},
	}
}

func snippetTools() []Definition {
	return []Definition{
		{
			Name:        ToolListSnippets,
			Description: "List Kontent.ai content type snippets from Management API (paginated)",
			Input:       schema.Object(schema.Props{"continuation_token": schema.ContinuationToken()}),
			Operation:   "Content Type Snippets Listing",
			Run:         pageTool("snippets", "snippets", "data"),
		},
		{
			Name:        ToolGetSnippet,
			Description: "Get Kontent.ai content type snippet by internal ID from Management API",
			Input:       idInput("id", "Internal ID of the content type snippet to get"),
			Operation:   "Content Type Snippet Retrieval",
			Run:         getTool("snippets/%s", "id"),
		},
		{
			Name:        ToolAddSnippet,
			Description: "Add a new content type snippet via Management API",
			Input:       schema.Object(schema.SnippetInput(), "name", "elements"),
			Operation:   "Content Type Snippet Creation",
			Run:         createTool("snippets", "name", "codename", "external_id", "elements"),
		},
		{
			Name:        ToolPatchSnippet,
			Description: "Update Kontent.ai content type snippet using JSON Patch (move, addInto, remove, replace)." + patchGuideHint,
			Input: schema.Object(schema.Props{
				"codename": schema.String().Describe("Codename of the snippet"),
				"operations": schema.SnippetPatchOperations().Describe("Patch operations array. " +
					"Always call get-type-snippet-mapi first. Snippets cannot contain content_groups, subpages, snippet or url_slug elements."),
			}, "codename", "operations"),
			Operation: "Content Type Snippet Patch",
			Run: patchTool("snippets/codename/%s", "codename", "snippet", func(codename string, n int) string {
				return fmt.Sprintf("Content type snippet '%s' updated successfully with %s", codename, nOps(n))
			}),
		},
		{
			Name:        ToolDeleteSnippet,
			Description: "Delete Kontent.ai content type snippet by codename",
			Input:       idInput("codename", "Codename of the snippet to delete"),
			Operation:   "Content Type Snippet Deletion",
			Run:         deleteTool("snippets/codename/%s", "codename", "Content type snippet", ""),
		},
	}
}

func taxonomyTools() []Definition {
	defs := schema.TaxonomyDefinitions()
	return []Definition{
		{
			Name:        ToolListTaxonomyGroups,
			Description: "Get all Kontent.ai taxonomy groups from Management API",
			Input:       schema.Empty(),
			Operation:   "Taxonomy Groups Listing",
			Run:         listAllTool("taxonomies", "taxonomies"),
		},
		{
			Name:        ToolGetTaxonomyGroup,
			Description: "Get Kontent.ai taxonomy group by ID",
			Input:       idInput("id", "Taxonomy group ID"),
			Operation:   "Taxonomy Group Retrieval",
			Run:         getTool("taxonomies/%s", "id"),
		},
		{
			Name:        ToolAddTaxonomyGroup,
			Description: "Add a new taxonomy group via Management API",
			Input:       schema.Object(schema.TaxonomyGroupInput(), "name", "terms").Define(defs),
			Operation:   "Taxonomy Group Creation",
			Run:         createTool("taxonomies", "name", "codename", "external_id", "terms"),
		},
		{
			Name:        ToolPatchTaxonomyGroup,
			Description: "Update Kontent.ai taxonomy group using patch operations (addInto, move, remove, replace)." + patchGuideHint,
			Input: schema.Object(schema.Props{
				"id":         schema.String().Describe("Taxonomy group ID"),
				"operations": schema.TaxonomyPatchOperations(),
			}, "id", "operations").Define(defs),
			Operation: "Taxonomy Group Patch",
			Run: patchTool("taxonomies/%s", "id", "taxonomyGroup", func(_ string, n int) string {
				return fmt.Sprintf("Taxonomy group updated with %s", nOps(n))
			}),
		},
		{
			Name:        ToolDeleteTaxonomyGroup,
			Description: "Delete Kontent.ai taxonomy group by ID from Management API",
			Input:       idInput("id", "Taxonomy group ID"),
			Operation:   "Taxonomy Group Deletion",
			Run:         deleteTool("taxonomies/%s", "id", "Taxonomy group", ""),
		},
	}
}
