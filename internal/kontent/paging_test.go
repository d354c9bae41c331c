package kontent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pagedDoer struct {
	pages  []*Response
	tokens []string
}

func (p *pagedDoer) Do(_ context.Context, req Request) (*Response, error) {
	p.tokens = append(p.tokens, req.Continuation)
	if len(p.pages) == 0 {
		return nil, errors.New("no more pages")
	}
	resp := p.pages[0]
	p.pages = p.pages[1:]
	return resp, nil
}

func TestListAll_FollowsContinuation(t *testing.T) {
	d := &pagedDoer{pages: []*Response{
		{Data: map[string]any{"types": []any{"a", "b"}}, Continuation: "t1"},
		{Data: map[string]any{"types": []any{"c"}, "pagination": map[string]any{"continuation_token": "t2"}}},
		{Data: map[string]any{"types": []any{}, "pagination": map[string]any{"continuation_token": nil}}},
	}}

	got, err := ListAll(context.Background(), d, "types", nil, "types")
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b", "c"}, got)
	assert.Equal(t, []string{"", "t1", "t2"}, d.tokens)
}

func TestListAll_WrongShape(t *testing.T) {
	d := &pagedDoer{pages: []*Response{{Data: map[string]any{"types": "nope"}}}}

	_, err := ListAll(context.Background(), d, "types", nil, "types")
	assert.ErrorContains(t, err, "not an array")
}

func TestPage_LastPageHasNullToken(t *testing.T) {
	d := &pagedDoer{pages: []*Response{{Data: map[string]any{"assets": []any{"x"}}}}}

	got, err := Page(context.Background(), d, "assets", nil, "assets", "prev")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"assets":     []any{"x"},
		"pagination": map[string]any{"continuation_token": nil},
	}, got)
	assert.Equal(t, []string{"prev"}, d.tokens)
}
