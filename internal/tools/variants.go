package tools

import (
	"context"
	"net/http"

	"github.com/kontentmcp/kontentmcp/internal/schema"
)

const variantAbout = " Variants hold language-specific content; structure defined by content type and its snippets."

func itemLanguage() schema.Props {
	return schema.Props{
		"itemId":     schema.String().Describe("Content item ID"),
		"languageId": schema.String().Describe("Language ID"),
	}
}

func idInput(key, desc string) schema.Schema {
	return schema.Object(schema.Props{key: schema.String().Describe(desc)}, key)
}

func pagedIDInput(key, desc string) schema.Schema {
	return schema.Object(schema.Props{
		key:                  schema.String().Describe(desc),
		"continuation_token": schema.ContinuationToken(),
	}, key)
}

func variantTools() []Definition {
	return []Definition{
		{
			Name:        ToolGetVariant,
			Description: "Get Kontent.ai variant",
			Input:       schema.Object(itemLanguage(), "itemId", "languageId"),
			Shape:       ShapeVariant,
			Operation:   "Language Variant Retrieval",
			Run:         getTool("items/%s/variants/%s", "itemId", "languageId"),
		},
		{
			Name:        ToolGetLatestVariant,
			Description: "Get latest Kontent.ai language variant." + variantAbout,
			Input:       schema.Object(itemLanguage(), "itemId", "languageId"),
			Shape:       ShapeVariant,
			Operation:   "Latest Language Variant Retrieval",
			Run:         getTool("items/%s/variants/%s", "itemId", "languageId"),
		},
		{
			Name:        ToolGetPublishedVariant,
			Description: "Get published Kontent.ai language variant." + variantAbout,
			Input:       schema.Object(itemLanguage(), "itemId", "languageId"),
			Shape:       ShapeVariant,
			Operation:   "Published Language Variant Retrieval",
			Run:         getTool("items/%s/variants/%s/published", "itemId", "languageId"),
		},
		{
			Name:        ToolUpsertLanguageVariant,
			Description: "Create or update Kontent.ai variant",
			Input:       schema.Object(schema.VariantInput(), "itemId", "languageId", "elements"),
			Shape:       ShapeVariant,
			Operation:   "Language Variant Upsert",
			Run:         upsertLanguageVariant,
		},
		{
			Name:        ToolListVariantsItem,
			Description: "List all Kontent.ai language variants of a content item from Management API",
			Input:       idInput("itemId", "Content item ID"),
			Shape:       ShapeVariant,
			Operation:   "Item Variants Listing",
			Run:         getTool("items/%s/variants", "itemId"),
		},
		{
			Name:        ToolListVariantsType,
			Description: "List Kontent.ai language variants by content type from Management API (paginated)",
			Input:       pagedIDInput("contentTypeId", "Content type ID"),
			Shape:       ShapeVariant,
			Operation:   "Content Type Variants Listing",
			Run:         variantPage("types/%s/variants", "contentTypeId"),
		},
		{
			Name: ToolListVariantsComponents,
			Description: "List Kontent.ai language variants containing components of a specific content type " +
				"from Management API (paginated)",
			Input:     pagedIDInput("contentTypeId", "Content type ID of the components"),
			Shape:     ShapeVariant,
			Operation: "Content Type Variants With Components Listing",
			Run:       variantPage("types/%s/components", "contentTypeId"),
		},
		{
			Name:        ToolListVariantsCollection,
			Description: "List Kontent.ai language variants by collection from Management API (paginated)",
			Input:       pagedIDInput("collectionId", "Collection ID"),
			Shape:       ShapeVariant,
			Operation:   "Collection Variants Listing",
			Run:         variantPage("collections/%s/variants", "collectionId"),
		},
		{
			Name:        ToolListVariantsSpace,
			Description: "List Kontent.ai language variants by space from Management API (paginated)",
			Input:       pagedIDInput("spaceId", "Space ID"),
			Shape:       ShapeVariant,
			Operation:   "Space Variants Listing",
			Run:         variantPage("spaces/%s/variants", "spaceId"),
		},
		{
			Name: ToolBulkGetItemsVariants,
			Description: "Bulk get Kontent.ai content items with their language variants by item and language reference pairs. " +
				"Items without a variant in the requested language return the item without the variant property.",
			Input:     schema.Object(schema.BulkVariantsInput(), "variants"),
			Shape:     ShapeVariant,
			Operation: "Bulk Get Items With Variants",
			Run:       bulkGetItemsVariants,
		},
	}
}

func variantPage(format, key string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		path, err := pathFrom(c.Args, format, key)
		if err != nil {
			return nil, err
		}
		return listPage(ctx, c, path, "variants", "variants")
	}
}

func upsertLanguageVariant(ctx context.Context, c Call) (any, error) {
	path, err := pathFrom(c.Args, "items/%s/variants/%s", "itemId", "languageId")
	if err != nil {
		return nil, err
	}
	body := map[string]any{"elements": c.Args["elements"]}
	if step := c.Args.String("workflow_step_id"); step != "" {
		body["workflow_step"] = map[string]any{"id": step}
	}
	return send(ctx, c.API, http.MethodPut, path, body)
}

func bulkGetItemsVariants(ctx context.Context, c Call) (any, error) {
	resp, err := c.API.Do(ctx, bulkRequest(c.Args))
	if err != nil {
		return nil, err
	}
	var data any
	if body, ok := resp.Data.(map[string]any); ok {
		data = body["data"]
	}
	return withPagination(map[string]any{"data": data}, resp), nil
}
