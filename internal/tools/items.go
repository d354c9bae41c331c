package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
	"github.com/kontentmcp/kontentmcp/internal/schema"
)

func itemTools() []Definition {
	return []Definition{
		{
			Name:        ToolGetItem,
			Description: "Get Kontent.ai content item metadata (name, codename, type, collection). Use get-variant-mapi for its content.",
			Input:       schema.Object(schema.Props{"id": schema.String().Describe("Item ID")}, "id"),
			Operation:   "Content Item Retrieval",
			Run:         getTool("items/%s", "id"),
		},
		{
			Name:        ToolGetDeliveryItem,
			Description: "Get a published Kontent.ai content item from the Delivery API by codename.",
			Input: schema.Object(schema.Props{
				"codename": schema.String().Describe("Item codename"),
				"language": schema.String().Describe("Language codename (default language when omitted)"),
				"depth":    schema.Integer().Describe("Depth of linked items to include"),
			}, "codename"),
			Operation: "Delivery Item Retrieval",
			Run:       getDeliveryItem,
		},
		{
			Name:        ToolAddContentItem,
			Description: "Add new Kontent.ai content item (creates structure only, use upsert-language-variant-mapi for content)",
			Input: schema.Object(schema.Props{
				"name":        schema.String().MinLength(1).MaxLength(200).Describe("Item name (1-200 chars)"),
				"type":        schema.Reference().Describe("Content type reference"),
				"codename":    schema.String().Describe("Codename (auto-generated if omitted)"),
				"external_id": schema.String().Describe("External ID"),
				"collection":  schema.Reference().Describe("Collection reference"),
			}, "name", "type"),
			Operation: "Content Item Creation",
			Run: func(ctx context.Context, c Call) (any, error) {
				return send(ctx, c.API, http.MethodPost, "items",
					c.Args.Pick("name", "type", "codename", "external_id", "collection"))
			},
		},
		{
			Name:        ToolUpdateContentItem,
			Description: "Update Kontent.ai content item",
			Input: schema.Object(schema.Props{
				"id":         schema.String().Describe("Item ID"),
				"name":       schema.String().MinLength(1).MaxLength(200).Describe("New item name (1-200 chars)"),
				"collection": schema.Reference().Describe("New collection reference"),
			}, "id"),
			Operation: "Content Item Update",
			Run:       updateContentItem,
		},
		{
			Name:        ToolDeleteContentItem,
			Description: "Delete Kontent.ai content item with all its language variants",
			Input:       schema.Object(schema.Props{"id": schema.String().Describe("Item ID")}, "id"),
			Operation:   "Content Item Deletion",
			Run: func(ctx context.Context, c Call) (any, error) {
				id, err := c.Args.RequireString("id")
				if err != nil {
					return nil, err
				}
				deleted, err := send(ctx, c.API, http.MethodDelete, apiPath("items/%s", id), nil)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"message":     fmt.Sprintf("Content item '%s' deleted successfully", id),
					"deletedItem": deleted,
				}, nil
			},
		},
	}
}

func getDeliveryItem(ctx context.Context, c Call) (any, error) {
	codename, err := c.Args.RequireString("codename")
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	if lang := c.Args.String("language"); lang != "" {
		q.Set("language", lang)
	}
	if c.Args.Has("depth") {
		q.Set("depth", fmt.Sprint(c.Args["depth"]))
	}
	resp, err := c.API.Do(ctx, kontent.Request{
		API:    kontent.Delivery,
		Method: http.MethodGet,
		Path:   apiPath("items/%s", codename),
		Query:  q,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func updateContentItem(ctx context.Context, c Call) (any, error) {
	id, err := c.Args.RequireString("id")
	if err != nil {
		return nil, err
	}
	path := apiPath("items/%s", id)
	if _, err := get(ctx, c.API, path); err != nil {
		if kontent.IsNotFound(err) {
			return nil, &Failure{
				Operation: "Update Content Item",
				Message:   fmt.Sprintf("Content item with ID '%s' does not exist. Use add-content-item-mapi to create new items.", id),
			}
		}
		return nil, err
	}

	body := c.Args.Pick("name", "collection")
	if len(body) == 0 {
		return nil, &Failure{
			Operation: "Update Content Item",
			Message:   "No update data provided. At least one field (name or collection) must be specified.",
		}
	}
	updated, err := send(ctx, c.API, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"message":     fmt.Sprintf("Content item '%s' updated successfully", id),
		"updatedItem": updated,
	}, nil
}
