package tools

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kontentmcp/kontentmcp/internal/kontent"
)

func send(ctx context.Context, api kontent.Doer, method, path string, body any) (any, error) {
	resp, err := api.Do(ctx, kontent.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func get(ctx context.Context, api kontent.Doer, path string) (any, error) {
	return send(ctx, api, http.MethodGet, path, nil)
}

// listPage fetches one page of path and reports its listKey array under outKey.
func listPage(ctx context.Context, c Call, path, listKey, outKey string) (any, error) {
	page, err := kontent.Page(ctx, c.API, path, nil, listKey, c.Args.String("continuation_token"))
	if err != nil {
		return nil, err
	}
	if outKey != listKey {
		page[outKey] = page[listKey]
		delete(page, listKey)
	}
	return page, nil
}

// getTool builds the RunFunc of a plain GET whose path takes the named
// arguments in order.
func getTool(format string, keys ...string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		path, err := pathFrom(c.Args, format, keys...)
		if err != nil {
			return nil, err
		}
		return get(ctx, c.API, path)
	}
}

// listAllTool concatenates every page of a listing.
func listAllTool(path, key string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		items, err := kontent.ListAll(ctx, c.API, path, nil, key)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []any{}
		}
		return items, nil
	}
}

func pathFrom(a Args, format string, keys ...string) (string, error) {
	ids := make([]string, len(keys))
	for i, k := range keys {
		v, err := a.RequireString(k)
		if err != nil {
			return "", err
		}
		ids[i] = v
	}
	return apiPath(format, ids...), nil
}

// operationCount reports how many patch operations were sent.
func operationCount(ops any) int {
	if list, ok := ops.([]any); ok {
		return len(list)
	}
	return 0
}

// patched is the summary every patch tool returns.
func patched(message, key string, data, ops any) map[string]any {
	return map[string]any{
		"message":           message,
		key:                 data,
		"appliedOperations": ops,
	}
}

// patchTool sends the operations argument as a PATCH to the path built from
// the named argument. describe renders the success message.
func patchTool(format, idKey, resultKey string, describe func(id string, n int) string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		var (
			path = format
			id   string
			err  error
		)
		if idKey != "" {
			if id, err = c.Args.RequireString(idKey); err != nil {
				return nil, err
			}
			path = apiPath(format, id)
		}
		ops := c.Args["operations"]
		res, err := send(ctx, c.API, http.MethodPatch, path, ops)
		if err != nil {
			return nil, err
		}
		return patched(describe(id, operationCount(ops)), resultKey, res, ops), nil
	}
}

// deleteTool deletes the entity addressed by the named argument. When
// resultKey is set the API's response is reported under it.
func deleteTool(format, idKey, noun, resultKey string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		id, err := c.Args.RequireString(idKey)
		if err != nil {
			return nil, err
		}
		res, err := send(ctx, c.API, http.MethodDelete, apiPath(format, id), nil)
		if err != nil {
			return nil, err
		}
		out := map[string]any{"message": fmt.Sprintf("%s '%s' deleted successfully", noun, id)}
		if resultKey != "" {
			out[resultKey] = res
		}
		return out, nil
	}
}

// createTool posts the named arguments as the new entity.
func createTool(path string, keys ...string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		return send(ctx, c.API, http.MethodPost, path, c.Args.Pick(keys...))
	}
}

func nOps(n int) string {
	return fmt.Sprintf("%d operation(s)", n)
}

// pageTool fetches one page of a listing without path arguments.
func pageTool(path, listKey, outKey string) RunFunc {
	return func(ctx context.Context, c Call) (any, error) {
		return listPage(ctx, c, path, listKey, outKey)
	}
}
