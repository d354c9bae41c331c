package kontent

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Doer sends API requests. *Client implements it.
type Doer interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// maxPages bounds ListAll against a server that never stops paging.
const maxPages = 1000

// ListAll follows continuation tokens on a GET listing and returns the
// concatenated contents of the key array from every page.
func ListAll(ctx context.Context, d Doer, path string, query url.Values, key string) ([]any, error) {
	var (
		all   []any
		token string
	)
	for page := 0; page < maxPages; page++ {
		resp, err := d.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Continuation: token})
		if err != nil {
			return nil, err
		}
		items, err := listField(resp.Data, key)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		all = append(all, items...)
		token = ContinuationToken(resp)
		if token == "" {
			return all, nil
		}
	}
	return nil, fmt.Errorf("list %s: more than %d pages", path, maxPages)
}

// Page fetches one page of a listing. The result carries the key array and a
// pagination object whose continuation_token is null on the last page.
func Page(ctx context.Context, d Doer, path string, query url.Values, key, token string) (map[string]any, error) {
	resp, err := d.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query, Continuation: token})
	if err != nil {
		return nil, err
	}
	items, err := listField(resp.Data, key)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	var next any
	if t := ContinuationToken(resp); t != "" {
		next = t
	}
	return map[string]any{
		key:          items,
		"pagination": map[string]any{"continuation_token": next},
	}, nil
}

// ContinuationToken returns the token for the next page, read from the
// response header or the body's pagination object.
func ContinuationToken(resp *Response) string {
	if resp == nil {
		return ""
	}
	if resp.Continuation != "" {
		return resp.Continuation
	}
	body, ok := resp.Data.(map[string]any)
	if !ok {
		return ""
	}
	p, ok := body["pagination"].(map[string]any)
	if !ok {
		return ""
	}
	t, _ := p["continuation_token"].(string)
	return t
}

func listField(data any, key string) ([]any, error) {
	if data == nil {
		return nil, nil
	}
	body, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response of type %T", data)
	}
	raw, ok := body[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, not an array", key, raw)
	}
	return items, nil
}
