package tools

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
	"github.com/kontentmcp/kontentmcp/internal/schema"
)

const (
	filterPath      = "early-access/variants/filter"
	bulkPath        = "items-with-variants/bulk"
	aiOperationPath = "early-access/ai-operation"

	filterDescription = `Filter Kontent.ai language variants of content items using Management API.

USE FOR:
- EXACT keyword matching: finding specific words, phrases, names, codes, or IDs in content. Example: 'find items containing rabbit' → search 'rabbit'
- Advanced filtering by content type, contributors, workflow steps, taxonomies etc
- CAN expand concepts to keywords when using filter (e.g., "neurology-related" → "neurology neurological brain nervous system")
- Also use as fallback when AI search is unavailable`

	searchDescription = `AI-powered semantic search for finding Kontent.ai content by meaning, concepts, themes and content similarity in a specific language variant.

CRITICAL REQUIREMENTS:
- The AI search feature may not be available for all Kontent.ai environments
- If you receive an "unavailable" status response, DO NOT attempt to use this tool again in the same session
- Use filter-variants-mapi for exact text matching when semantic search is unavailable
- Requires language variant filter parameter (e.g., default language '00000000-0000-0000-0000-000000000000')
- Returns at most the 50 most relevant items
- Only filters by variant ID; use filter-variants-mapi for content types, workflow steps, taxonomies and similar

USE FOR:
- Conceptual search: pass the concept as-is instead of extracting keywords (e.g., "find content about keeping beverages cold" → searchPhrase: "beverage coolers")
- Content similarity: pass a larger piece of content to find similar items`
)

var errInProgress = errors.New("operation still in progress")

func searchTools() []Definition {
	return []Definition{
		{
			Name:        ToolFilterVariants,
			Description: filterDescription,
			Input:       schema.Object(schema.FilterVariantsInput()),
			Shape:       ShapeVariant,
			Operation:   "Variant Search",
			Run:         filterVariants,
		},
		{
			Name:        ToolSearchVariants,
			Description: searchDescription,
			Input: schema.Object(schema.Props{
				"searchPhrase": schema.String().MinLength(1).Describe("Concept or theme to search for"),
				"filter": schema.Object(schema.Props{
					"variantId": schema.String().Format("uuid").Describe("Language ID of the variants to search"),
				}, "variantId").Describe("Restricts the search to one language"),
			}, "searchPhrase", "filter"),
			Operation: "AI-powered Variant Search",
			Run:       searchVariants,
		},
	}
}

func filterVariants(ctx context.Context, c Call) (any, error) {
	filters := c.Args.Pick("search_phrase", "content_types", "contributors", "has_no_contributors",
		"completion_statuses", "language", "workflow_steps", "taxonomy_groups")
	var order any
	if by := c.Args.String("order_by"); by != "" {
		direction := "Ascending"
		if c.Args.String("order_direction") == "desc" {
			direction = "Descending"
		}
		order = map[string]any{"by": by, "direction": direction}
	}
	body := map[string]any{"filters": filters, "order": order}
	if include, ok := c.Args.Bool("include_content"); ok {
		body["include_content"] = include
	}

	resp, err := c.API.Do(ctx, kontent.Request{
		Method:       http.MethodPost,
		Path:         filterPath,
		Body:         body,
		Continuation: c.Args.String("continuation_token"),
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func bulkRequest(a Args) kontent.Request {
	return kontent.Request{
		Method:       http.MethodPost,
		Path:         bulkPath,
		Body:         map[string]any{"variants": a["variants"]},
		Continuation: a.String("continuation_token"),
	}
}

// withPagination adds the response's continuation token to out.
func withPagination(out map[string]any, resp *kontent.Response) map[string]any {
	var next any
	if t := kontent.ContinuationToken(resp); t != "" {
		next = t
	}
	out["pagination"] = map[string]any{"continuation_token": next}
	return out
}

func searchVariants(ctx context.Context, c Call) (any, error) {
	phrase, err := c.Args.RequireString("searchPhrase")
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"actionName": "Search",
		"type":       "multiple-inputs-request-v1",
		"inputs": map[string]any{
			"searchPhrase": map[string]any{"type": "string", "value": phrase},
			"filter":       map[string]any{"type": "content-item-variant-filter", "value": c.Args["filter"]},
		},
		"trackingData": map[string]any{"type": "empty-operation-tracking-data-v1"},
	}

	started, err := send(ctx, c.API, http.MethodPost, aiOperationPath, payload)
	if err != nil {
		var apiErr *kontent.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden &&
			strings.Contains(apiErr.Message, "AI Feature Not Available") {
			return map[string]any{
				"status": "unavailable",
				"result": "AI search feature is not available for environment " + environmentOf(c.API),
			}, nil
		}
		return nil, err
	}
	operationID := stringField(started, "operationId")
	if operationID == "" {
		return nil, errors.New("search operation did not return an operation id")
	}

	result, err := pollOperation(ctx, c, operationID)
	if err != nil {
		return nil, err
	}
	message := stringField(result, "message")
	if strings.Contains(message, "completed successfully") {
		return map[string]any{"result": field(result, "result")}, nil
	}
	return nil, fmt.Errorf("Search operation error: %s. Operation ID: %s", message, operationID)
}

// pollOperation waits for the AI operation to leave the in-progress state.
func pollOperation(ctx context.Context, c Call, operationID string) (any, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.Poll.Initial
	exp.MaxInterval = c.Poll.Max
	exp.Multiplier = 1.5
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.Poll.Attempts)), ctx)

	path := apiPath(aiOperationPath+"/%s", operationID)
	var result any
	err := backoff.Retry(func() error {
		data, err := get(ctx, c.API, path)
		if err != nil {
			return backoff.Permanent(err)
		}
		if strings.Contains(stringField(data, "message"), "still in progress") {
			return errInProgress
		}
		result = data
		return nil
	}, policy)
	if errors.Is(err, errInProgress) {
		return nil, fmt.Errorf("search operation %s: %w after %d attempts", operationID, err, c.Poll.Attempts+1)
	}
	return result, err
}

// environmentOf names the environment behind api when it is a *kontent.Client.
func environmentOf(api kontent.Doer) string {
	if e, ok := api.(interface{ EnvironmentID() string }); ok {
		return e.EnvironmentID()
	}
	return "unknown"
}

func field(v any, key string) any {
	if m, ok := v.(map[string]any); ok {
		return m[key]
	}
	return nil
}

func stringField(v any, key string) string {
	s, _ := field(v, key).(string)
	return s
}
