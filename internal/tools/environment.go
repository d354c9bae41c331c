package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

func languageTools() []Definition {
	return []Definition{
		{
			Name:        ToolListLanguages,
			Description: "Get all Kontent.ai languages (paginated)",
			Input:       schema.Object(schema.Props{"continuation_token": schema.ContinuationToken()}),
			Operation:   "Languages Listing",
			Run:         pageTool("languages", "languages", "data"),
		},
		{
			Name:        ToolAddLanguage,
			Description: "Add new Kontent.ai language via Management API",
			Input:       schema.Object(schema.LanguageInput(), "name", "codename"),
			Operation:   "Language Creation",
			Run:         createTool("languages", "name", "codename", "fallback_language", "external_id", "is_active"),
		},
		{
			Name: ToolPatchLanguage,
			Description: "Update Kontent.ai language using replace operations via Management API. " +
				"Only active languages can be modified.",
			Input: schema.Object(schema.Props{
				"languageId": schema.String().Describe("Language ID"),
				"operations": schema.LanguagePatchOperations(),
			}, "languageId", "operations"),
			Operation: "Language Patch",
			Run: patchTool("languages/%s", "languageId", "language", func(_ string, n int) string {
				return fmt.Sprintf("Language updated with %s", nOps(n))
			}),
		},
	}
}

func collectionTools() []Definition {
	return []Definition{
		{
			Name: ToolListCollections,
			Description: "Get all Kontent.ai collections. Collections organize content items into logical groups " +
				"by team, brand, or project.",
			Input:     schema.Empty(),
			Operation: "Collections Listing",
			Run:       getTool("collections"),
		},
		{
			Name:        ToolPatchCollections,
			Description: "Update Kontent.ai collections using patch operations (addInto, move, remove, replace)",
			Input: schema.Object(schema.Props{
				"operations": schema.CollectionPatchOperations(),
			}, "operations"),
			Operation: "Collections Patch",
			Run: patchTool("collections", "", "collections", func(_ string, n int) string {
				return fmt.Sprintf("Collections updated successfully with %s", nOps(n))
			}),
		},
	}
}

func spaceTools() []Definition {
	return []Definition{
		{
			Name:        ToolListSpaces,
			Description: "Get all Kontent.ai spaces from Management API",
			Input:       schema.Empty(),
			Operation:   "Spaces Listing",
			Run:         getTool("spaces"),
		},
		{
			Name:        ToolAddSpace,
			Description: "Add Kontent.ai space to environment from Management API",
			Input:       schema.Object(schema.SpaceInput(), "name"),
			Operation:   "Space Creation",
			Run:         createTool("spaces", "name", "codename", "collections"),
		},
		{
			Name:        ToolPatchSpace,
			Description: "Patch Kontent.ai space using replace operations",
			Input: schema.Object(schema.Props{
				"id":         schema.String().Describe("Space ID"),
				"operations": schema.SpacePatchOperations(),
			}, "id", "operations"),
			Operation: "Space Modification",
			Run: patchTool("spaces/%s", "id", "space", func(_ string, n int) string {
				return fmt.Sprintf("Space updated successfully with %s", nOps(n))
			}),
		},
		{
			Name:        ToolModifySpace,
			Description: "Modify Kontent.ai space using replace operations from Management API",
			Input: schema.Object(schema.Props{
				"spaceId":    schema.String(),
				"operations": schema.SpacePatchOperations(),
			}, "spaceId", "operations"),
			Operation: "Space Modification",
			Run: patchTool("spaces/%s", "spaceId", "space", func(_ string, n int) string {
				return fmt.Sprintf("Space updated successfully with %s", nOps(n))
			}),
		},
		{
			Name:        ToolDeleteSpace,
			Description: "Delete Kontent.ai space",
			Input:       idInput("id", "Space ID"),
			Operation:   "Space Deletion",
			Run:         deleteTool("spaces/%s", "id", "Space", ""),
		},
	}
}

var workflowFields = []string{"name", "codename", "scopes", "steps", "published_step", "archived_step"}

func workflowTools() []Definition {
	update := schema.WorkflowInput()
	update["identifier"] = schema.String().Describe("Workflow ID (UUID) to update")

	return []Definition{
		{
			Name: ToolListWorkflows,
			Description: "Get all Kontent.ai workflows. Workflow states manage content lifecycle: " +
				"drafting, review, published, archived.",
			Input:     schema.Empty(),
			Operation: "Workflows Listing",
			Run:       getTool("workflows"),
		},
		{
			Name:        ToolAddWorkflow,
			Description: "Add new Kontent.ai workflow",
			Input:       schema.Object(schema.WorkflowInput(), "name", "scopes", "steps", "published_step", "archived_step"),
			Operation:   "Workflow Creation",
			Run:         createTool("workflows", workflowFields...),
		},
		{
			Name:        ToolUpdateWorkflow,
			Description: "Update Kontent.ai workflow",
			Input:       schema.Object(update, "identifier", "name", "scopes", "steps", "published_step", "archived_step"),
			Operation:   "Workflow Update",
			Run: func(ctx context.Context, c Call) (any, error) {
				path, err := pathFrom(c.Args, "workflows/%s", "identifier")
				if err != nil {
					return nil, err
				}
				return send(ctx, c.API, http.MethodPut, path, c.Args.Pick(workflowFields...))
			},
		},
		{
			Name:        ToolDeleteWorkflow,
			Description: "Delete Kontent.ai workflow",
			Input:       idInput("id", "Workflow ID"),
			Operation:   "Workflow Deletion",
			Run:         deleteTool("workflows/%s", "id", "Workflow", ""),
		},
	}
}

func roleTools() []Definition {
	return []Definition{
		{
			Name:        ToolListRoles,
			Description: "Get all Kontent.ai roles",
			Input:       schema.Empty(),
			Operation:   "Roles Listing",
			Run:         getTool("roles"),
		},
		{
			Name:        ToolGetRole,
			Description: "Get Kontent.ai role by ID from Management API",
			Input:       idInput("identifier", "Role ID (UUID)"),
			Operation:   "Role Retrieval",
			Run:         getTool("roles/%s", "identifier"),
		},
	}
}

func webhookTools() []Definition {
	const about = " Webhooks notify external systems about changes in your Kontent.ai project such as content publishing, updates, or deletions."
	return []Definition{
		{
			Name:        ToolListWebhooks,
			Description: "Get all webhooks from Management API." + about,
			Input:       schema.Empty(),
			Operation:   "Webhooks Listing",
			Run:         getTool("webhooks-vnext"),
		},
		{
			Name:        ToolGetWebhook,
			Description: "Get a specific webhook by ID from Management API." + about,
			Input:       idInput("id", "Webhook ID"),
			Operation:   "Webhook Retrieval",
			Run:         getTool("webhooks-vnext/%s", "id"),
		},
		{
			Name: ToolAddWebhook,
			Description: "Create a new webhook via Management API." + about +
				" Configure triggers for specific content types, assets, taxonomy groups, languages, or content items.",
			Input:     schema.Object(schema.WebhookInput(), "name", "url", "secret", "delivery_triggers"),
			Operation: "Webhook Creation",
			Run:       createTool("webhooks-vnext", "name", "url", "secret", "enabled", "headers", "delivery_triggers"),
		},
	}
}
