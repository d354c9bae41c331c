package tools

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
)

// fakeAPI records requests and answers them from handle.
type fakeAPI struct {
	requests []kontent.Request
	handle   func(req kontent.Request) (*kontent.Response, error)
}

func (f *fakeAPI) Do(_ context.Context, req kontent.Request) (*kontent.Response, error) {
	f.requests = append(f.requests, req)
	if f.handle == nil {
		return &kontent.Response{Status: http.StatusOK}, nil
	}
	return f.handle(req)
}

func (f *fakeAPI) last(t *testing.T) kontent.Request {
	t.Helper()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func reply(data any) func(kontent.Request) (*kontent.Response, error) {
	return func(kontent.Request) (*kontent.Response, error) {
		return &kontent.Response{Status: http.StatusOK, Data: data}, nil
	}
}

func newTestRegistry(t *testing.T, api kontent.Doer) *Registry {
	t.Helper()
	reg, err := NewRegistry(Options{
		Clients:  func(context.Context) (kontent.Doer, error) { return api, nil },
		Validate: true,
		Poll:     PollSettings{Attempts: 3, Initial: time.Millisecond, Max: time.Millisecond},
	})
	require.NoError(t, err)
	return reg
}

func call(t *testing.T, reg *Registry, name ToolName, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := reg.GetTool(name)
	require.NotNil(t, tool, "tool %s not registered", name)
	res, err := tool.Execute(context.Background(), args)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestCatalogue_SchemasCompile(t *testing.T) {
	reg := newTestRegistry(t, &fakeAPI{})

	names := reg.Names()
	assert.Len(t, names, len(Catalogue()))
	assert.Contains(t, names, string(ToolGetItem))
	assert.Contains(t, names, string(ToolGetPatchGuide))
	for _, d := range reg.AllTools().Definitions() {
		assert.NotEmpty(t, d["description"], d["name"])
		assert.Equal(t, "object", d["inputSchema"].(map[string]any)["type"], d["name"])
	}
}

func TestCatalogue_EveryDefinitionHasOperation(t *testing.T) {
	for _, d := range Catalogue() {
		assert.NotEmpty(t, d.Operation, d.Name)
		assert.NotNil(t, d.Run, d.Name)
	}
}

func TestNewRegistry_Enabled(t *testing.T) {
	reg, err := NewRegistry(Options{Enabled: func(name string) bool { return name != string(ToolDeleteContentItem) }})
	require.NoError(t, err)

	assert.Nil(t, reg.GetTool(ToolDeleteContentItem))
	assert.NotNil(t, reg.GetTool(ToolGetItem))
}

func TestRegistryBuilder_RejectsDuplicates(t *testing.T) {
	def := Catalogue()[0]
	_, err := NewRegistryBuilder(Options{}).WithDefinition(def).WithDefinition(def).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(def.Name))
}

func TestRegistryBuilder_SkipsDisabled(t *testing.T) {
	reg, err := NewRegistryBuilder(Options{Enabled: func(string) bool { return false }}).
		WithDefinition(Catalogue()[0]).
		Build()
	require.NoError(t, err)
	assert.Empty(t, reg.Names())
}

func TestExecute_GetItemPrunes(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "abc", "name": "Home", "external_id": nil, "codename": ""})}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolGetItem, map[string]any{"id": "abc"})

	assert.False(t, res.IsError)
	assert.Equal(t, `{"id":"abc","name":"Home"}`, text(t, res))
	assert.Equal(t, "items/abc", api.last(t).Path)
	assert.Equal(t, http.MethodGet, api.last(t).Method)
}

func TestExecute_EscapesPathArguments(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "x"})}
	reg := newTestRegistry(t, api)

	call(t, reg, ToolGetItem, map[string]any{"id": "a/b"})

	assert.Equal(t, "items/a%2Fb", api.last(t).Path)
}

func TestExecute_InvalidArguments(t *testing.T) {
	api := &fakeAPI{}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolGetItem, map[string]any{})

	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "Content Item Retrieval: invalid arguments")
	assert.Empty(t, api.requests)
}

func TestExecute_APIError(t *testing.T) {
	api := &fakeAPI{handle: func(kontent.Request) (*kontent.Response, error) {
		return nil, &kontent.APIError{StatusCode: 400, Message: "Invalid type", RequestID: "r1"}
	}}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolGetType, map[string]any{"id": "t1"})

	assert.True(t, res.IsError)
	assert.Equal(t, "Content Type Retrieval: Invalid type (status 400, request id r1)", text(t, res))
}

func TestExecute_ClientFactoryError(t *testing.T) {
	reg, err := NewRegistry(Options{
		Clients: func(context.Context) (kontent.Doer, error) { return nil, errors.New("KONTENT_API_KEY is not set") },
	})
	require.NoError(t, err)

	res := call(t, reg, ToolListRoles, nil)

	assert.True(t, res.IsError)
	assert.Equal(t, "Roles Listing: KONTENT_API_KEY is not set", text(t, res))
}

func TestExecute_OfflineToolNeedsNoClient(t *testing.T) {
	reg, err := NewRegistry(Options{})
	require.NoError(t, err)

	res := call(t, reg, ToolGetPatchGuide, map[string]any{})

	assert.False(t, res.IsError)
	assert.Equal(t, patchOverview, text(t, res))
	assert.Equal(t, patchPropertyGuide, text(t, call(t, reg, ToolGetPatchGuide, map[string]any{"entity": "language"})))
	assert.Equal(t, patchPathGuide, text(t, call(t, reg, ToolGetPatchGuide, map[string]any{"entity": "snippet"})))
	assert.Equal(t, InitialContext(), text(t, call(t, reg, ToolGetInitialContext, nil)))
}

func TestUpdateContentItem_Missing(t *testing.T) {
	api := &fakeAPI{handle: func(kontent.Request) (*kontent.Response, error) {
		return nil, &kontent.APIError{StatusCode: http.StatusNotFound, Message: "not found"}
	}}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolUpdateContentItem, map[string]any{"id": "i1", "name": "New"})

	assert.True(t, res.IsError)
	assert.Equal(t, "Update Content Item: Content item with ID 'i1' does not exist. "+
		"Use add-content-item-mapi to create new items.", text(t, res))
	assert.Len(t, api.requests, 1)
}

func TestUpdateContentItem_NoFields(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "i1"})}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolUpdateContentItem, map[string]any{"id": "i1"})

	assert.True(t, res.IsError)
	assert.Equal(t, "Update Content Item: No update data provided. "+
		"At least one field (name or collection) must be specified.", text(t, res))
}

func TestUpdateContentItem_Updates(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "i1", "name": "New"})}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolUpdateContentItem, map[string]any{"id": "i1", "name": "New"})

	require.False(t, res.IsError, text(t, res))
	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, map[string]any{"name": "New"}, req.Body)
	assert.Equal(t, `{"message":"Content item 'i1' updated successfully","updatedItem":{"id":"i1","name":"New"}}`, text(t, res))
}

func TestGetVariant_DropsBareElements(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{
		"item": map[string]any{"id": "i1"},
		"elements": []any{
			map[string]any{"element": map[string]any{"id": "e1"}, "value": ""},
			map[string]any{"element": map[string]any{"id": "e2"}, "value": "Hello"},
		},
	})}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolGetVariant, map[string]any{"itemId": "i1", "languageId": "l1"})

	assert.Equal(t, `{"elements":[{"element":{"id":"e2"},"value":"Hello"}],"item":{"id":"i1"}}`, text(t, res))
	assert.Equal(t, "items/i1/variants/l1", api.last(t).Path)
}

func TestUpsertLanguageVariant_Body(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"item": map[string]any{"id": "i1"}})}
	reg := newTestRegistry(t, api)
	elements := []any{map[string]any{"element": map[string]any{"codename": "title"}, "value": "Hi"}}

	call(t, reg, ToolUpsertLanguageVariant, map[string]any{
		"itemId": "i1", "languageId": "l1", "elements": elements, "workflow_step_id": "s1",
	})

	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, map[string]any{"elements": elements, "workflow_step": map[string]any{"id": "s1"}}, req.Body)
}

func TestListVariantsType_Paginates(t *testing.T) {
	api := &fakeAPI{handle: func(kontent.Request) (*kontent.Response, error) {
		return &kontent.Response{
			Data:         map[string]any{"variants": []any{map[string]any{"item": map[string]any{"id": "i1"}}}},
			Continuation: "next",
		}, nil
	}}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolListVariantsType, map[string]any{"contentTypeId": "t1", "continuation_token": "tok"})

	assert.Equal(t, `{"pagination":{"continuation_token":"next"},"variants":[{"item":{"id":"i1"}}]}`, text(t, res))
	assert.Equal(t, "types/t1/variants", api.last(t).Path)
	assert.Equal(t, "tok", api.last(t).Continuation)
}

func TestListSnippets_ReportsData(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{
		"snippets":   []any{map[string]any{"codename": "seo"}},
		"pagination": map[string]any{"continuation_token": nil},
	})}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolListSnippets, nil)

	assert.Equal(t, `{"data":[{"codename":"seo"}]}`, text(t, res))
}

func TestListContentTypes_FollowsPages(t *testing.T) {
	api := &fakeAPI{}
	api.handle = func(req kontent.Request) (*kontent.Response, error) {
		if req.Continuation == "" {
			return &kontent.Response{Data: map[string]any{"types": []any{"a"}}, Continuation: "p2"}, nil
		}
		return &kontent.Response{Data: map[string]any{"types": []any{"b"}}}, nil
	}
	reg := newTestRegistry(t, api)

	res := call(t, reg, ToolListContentTypes, nil)

	assert.Equal(t, `["a","b"]`, text(t, res))
	assert.Len(t, api.requests, 2)
}

func TestPublishVariant(t *testing.T) {
	now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	t.Run("timezone requires schedule", func(t *testing.T) {
		api := &fakeAPI{}
		res := call(t, newTestRegistry(t, api), ToolPublishVariant,
			map[string]any{"itemId": "i1", "languageId": "l1", "displayTimezone": "Europe/Prague"})

		assert.True(t, res.IsError)
		assert.Equal(t, "Publish/Schedule Language Variant: The 'displayTimezone' parameter can only be used "+
			"in combination with 'scheduledTo' parameter for scheduled publishing.", text(t, res))
		assert.Empty(t, api.requests)
	})

	t.Run("immediate", func(t *testing.T) {
		api := &fakeAPI{}
		res := call(t, newTestRegistry(t, api), ToolPublishVariant, map[string]any{"itemId": "i1", "languageId": "l1"})

		req := api.last(t)
		assert.Equal(t, "items/i1/variants/l1/publish", req.Path)
		assert.Nil(t, req.Body)
		assert.Contains(t, text(t, res), `"action":"published"`)
		assert.Contains(t, text(t, res), `"timestamp":"2025-03-01T10:00:00.000Z"`)
		assert.NotContains(t, text(t, res), "scheduledTo")
	})

	t.Run("scheduled", func(t *testing.T) {
		api := &fakeAPI{}
		res := call(t, newTestRegistry(t, api), ToolPublishVariant, map[string]any{
			"itemId": "i1", "languageId": "l1", "scheduledTo": "2025-04-01T08:00:00Z", "displayTimezone": "Europe/Prague",
		})

		assert.Equal(t, map[string]any{"scheduled_to": "2025-04-01T08:00:00Z", "display_timezone": "Europe/Prague"}, api.last(t).Body)
		assert.Contains(t, text(t, res), `"action":"scheduled"`)
		assert.Contains(t, text(t, res), "(timezone: Europe/Prague)")
	})
}

func TestUnpublishVariant_Scheduled(t *testing.T) {
	api := &fakeAPI{}
	res := call(t, newTestRegistry(t, api), ToolUnpublishVariant, map[string]any{
		"itemId": "i1", "languageId": "l1", "scheduledTo": "2025-04-01T08:00:00Z",
	})

	assert.Equal(t, "items/i1/variants/l1/unpublish-and-archive", api.last(t).Path)
	assert.Equal(t, map[string]any{"scheduled_to": "2025-04-01T08:00:00Z"}, api.last(t).Body)
	assert.Contains(t, text(t, res), `"action":"scheduled for unpublishing"`)
}

func TestChangeWorkflowStep_Body(t *testing.T) {
	api := &fakeAPI{}
	res := call(t, newTestRegistry(t, api), ToolChangeVariantWorkflowStep, map[string]any{
		"itemId": "i1", "languageId": "l1", "workflowId": "w1", "workflowStepId": "s2",
	})

	assert.Equal(t, map[string]any{
		"workflow_identifier": map[string]any{"id": "w1"},
		"step_identifier":     map[string]any{"id": "s2"},
	}, api.last(t).Body)
	assert.Contains(t, text(t, res), "to workflow step 's2'")
}

func TestPatchTaxonomyGroup_Summary(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "g1", "name": "Topics"})}
	ops := []any{map[string]any{"op": "replace", "property_name": "name", "value": "Topics"}}

	res := call(t, newTestRegistry(t, api), ToolPatchTaxonomyGroup, map[string]any{"id": "g1", "operations": ops})

	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, http.MethodPatch, api.last(t).Method)
	assert.Equal(t, ops, api.last(t).Body)
	assert.Equal(t, `{"appliedOperations":[{"op":"replace","property_name":"name","value":"Topics"}],`+
		`"message":"Taxonomy group updated with 1 operation(s)","taxonomyGroup":{"id":"g1","name":"Topics"}}`, text(t, res))
}

func TestModifySpace_UsesSpaceID(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"id": "s1", "name": "Blog"})}
	ops := []any{map[string]any{"op": "replace", "property_name": "name", "value": "Blog"}}

	res := call(t, newTestRegistry(t, api), ToolModifySpace, map[string]any{"spaceId": "s1", "operations": ops})

	require.False(t, res.IsError, text(t, res))
	assert.Equal(t, "spaces/s1", api.last(t).Path)
	assert.Equal(t, http.MethodPatch, api.last(t).Method)
	assert.Contains(t, text(t, res), `"message":"Space updated successfully with 1 operation(s)"`)
}

func TestDeleteContentType_ByCodename(t *testing.T) {
	api := &fakeAPI{}
	res := call(t, newTestRegistry(t, api), ToolDeleteContentType, map[string]any{"codename": "article"})

	assert.Equal(t, "types/codename/article", api.last(t).Path)
	assert.Equal(t, http.MethodDelete, api.last(t).Method)
	assert.Equal(t, `{"message":"Content type 'article' deleted successfully"}`, text(t, res))
}

func TestFilterVariants_Body(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{"data": []any{}})}
	call(t, newTestRegistry(t, api), ToolFilterVariants, map[string]any{
		"search_phrase":      "rabbit",
		"order_by":           "name",
		"order_direction":    "desc",
		"continuation_token": "c1",
	})

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, filterPath, req.Path)
	assert.Equal(t, "c1", req.Continuation)
	assert.Equal(t, map[string]any{
		"filters": map[string]any{"search_phrase": "rabbit"},
		"order":   map[string]any{"by": "name", "direction": "Descending"},
	}, req.Body)
}

func TestBulkGetItemsVariants(t *testing.T) {
	api := &fakeAPI{handle: reply(map[string]any{
		"data": []any{map[string]any{
			"item":    map[string]any{"id": "i1"},
			"variant": map[string]any{
				"language": map[string]any{"id": "l1"},
				"elements": []any{map[string]any{"element": map[string]any{"id": "e1"}, "value": nil}},
			},
		}},
		"pagination": map[string]any{"continuation_token": "n2"},
	})}
	pairs := []any{map[string]any{"item": map[string]any{"id": "i1"}, "language": map[string]any{"codename": "en"}}}

	res := call(t, newTestRegistry(t, api), ToolBulkGetItemsVariants, map[string]any{"variants": pairs})

	assert.Equal(t, bulkPath, api.last(t).Path)
	assert.Equal(t, `{"data":[{"item":{"id":"i1"},"variant":{"language":{"id":"l1"}}}],"pagination":{"continuation_token":"n2"}}`, text(t, res))
}

func TestSearchVariants(t *testing.T) {
	args := map[string]any{"searchPhrase": "fairy tales", "filter": map[string]any{"variantId": "00000000-0000-0000-0000-000000000000"}}

	t.Run("unavailable", func(t *testing.T) {
		api := &fakeAPI{handle: func(kontent.Request) (*kontent.Response, error) {
			return nil, &kontent.APIError{StatusCode: http.StatusForbidden, Message: "AI Feature Not Available"}
		}}
		res := call(t, newTestRegistry(t, api), ToolSearchVariants, args)

		assert.False(t, res.IsError)
		assert.Contains(t, text(t, res), `"status":"unavailable"`)
	})

	t.Run("polls until complete", func(t *testing.T) {
		polls := 0
		api := &fakeAPI{handle: func(req kontent.Request) (*kontent.Response, error) {
			if req.Method == http.MethodPost {
				return &kontent.Response{Data: map[string]any{"operationId": "op1"}}, nil
			}
			polls++
			if polls < 2 {
				return &kontent.Response{Data: map[string]any{"message": "Operation still in progress"}}, nil
			}
			return &kontent.Response{Data: map[string]any{
				"message": "Operation completed successfully",
				"result":  []any{map[string]any{"itemId": "i1"}},
			}}, nil
		}}
		res := call(t, newTestRegistry(t, api), ToolSearchVariants, args)

		require.False(t, res.IsError, text(t, res))
		assert.Equal(t, `{"result":[{"itemId":"i1"}]}`, text(t, res))
		assert.Equal(t, aiOperationPath+"/op1", api.last(t).Path)
		assert.Equal(t, 2, polls)
	})

	t.Run("operation failed", func(t *testing.T) {
		api := &fakeAPI{handle: func(req kontent.Request) (*kontent.Response, error) {
			if req.Method == http.MethodPost {
				return &kontent.Response{Data: map[string]any{"operationId": "op2"}}, nil
			}
			return &kontent.Response{Data: map[string]any{"message": "Operation failed"}}, nil
		}}
		res := call(t, newTestRegistry(t, api), ToolSearchVariants, args)

		assert.True(t, res.IsError)
		assert.Equal(t, "AI-powered Variant Search: Search operation error: Operation failed. Operation ID: op2", text(t, res))
	})

	t.Run("gives up", func(t *testing.T) {
		api := &fakeAPI{handle: func(req kontent.Request) (*kontent.Response, error) {
			if req.Method == http.MethodPost {
				return &kontent.Response{Data: map[string]any{"operationId": "op3"}}, nil
			}
			return &kontent.Response{Data: map[string]any{"message": "Operation still in progress"}}, nil
		}}
		res := call(t, newTestRegistry(t, api), ToolSearchVariants, args)

		assert.True(t, res.IsError)
		assert.Contains(t, text(t, res), "still in progress")
		assert.Len(t, api.requests, 1+4)
	})
}
