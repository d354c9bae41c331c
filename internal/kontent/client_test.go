package kontent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{
		EnvironmentID: "env-1",
		APIKey:        "secret",
		ManageURL:     srv.URL,
		DeliveryURL:   srv.URL + "/deliver",
		Source:        "kontentmcp;test",
		MaxRetries:    2,
		RetryWait:     time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(Options{APIKey: "k"})
	assert.ErrorContains(t, err, "KONTENT_ENVIRONMENT_ID")

	_, err = NewClient(Options{EnvironmentID: "e"})
	assert.ErrorContains(t, err, "KONTENT_API_KEY")
}

func TestClient_Do_ManagementRequest(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/projects/env-1/types/codename/article", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "kontentmcp;test", r.Header.Get(SourceHeader))
		_, _ = io.WriteString(w, `{"id":"t1","elements":[],"count":3}`)
	})

	resp, err := c.Do(context.Background(), Request{Path: "types/codename/article"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, map[string]any{"id": "t1", "elements": []any{}, "count": json.Number("3")}, resp.Data)
}

func TestClient_Do_DeliveryRequestHasNoAuth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deliver/env-1/items", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("depth"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"items":[]}`)
	})

	_, err := c.Do(context.Background(), Request{API: Delivery, Path: "items", Query: url.Values{"depth": {"2"}}})
	require.NoError(t, err)
}

func TestClient_Do_SendsBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Hello", got["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"i1"}`)
	})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "items", Body: map[string]any{"name": "Hello"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
}

func TestClient_Do_EmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := c.Do(context.Background(), Request{Method: http.MethodDelete, Path: "items/x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	assert.Nil(t, resp.Data)
}

func TestClient_Do_APIError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"request_id":"r1","error_code":5,"message":"Invalid body","validation_errors":[{"message":"Required","path":"name"}]}`)
	})

	_, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: "items"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "r1", apiErr.RequestID)
	assert.Equal(t, 5, apiErr.ErrorCode)
	assert.Equal(t, "kontent: 400: Invalid body; name: Required", apiErr.Error())
	assert.Equal(t, int32(1), calls.Load(), "client errors are not retried")
}

func TestClient_Do_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.Do(context.Background(), Request{Path: "items/missing"})
	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
}

func TestClient_Do_RetriesThrottling(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	resp, err := c.Do(context.Background(), Request{Path: "languages"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, resp.Data)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Do_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Do(context.Background(), Request{Path: "languages"})
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Do_ZeroRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{EnvironmentID: "env-1", APIKey: "secret", ManageURL: srv.URL, MaxRetries: 0})
	require.NoError(t, err)

	_, err = c.Do(context.Background(), Request{Path: "languages"})
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Do_CapsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "3600")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{
		EnvironmentID: "env-1",
		APIKey:        "secret",
		ManageURL:     srv.URL,
		MaxRetries:    1,
		RetryWait:     time.Millisecond,
		MaxRetryWait:  10 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	resp, err := c.Do(ctx, Request{Path: "languages"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, resp.Data)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRetryAfterBackOff_Cap(t *testing.T) {
	b := &retryAfterBackOff{BackOff: &backoff.ConstantBackOff{Interval: time.Second}, max: 2 * time.Second}
	assert.Equal(t, time.Second, b.NextBackOff())

	b.wait = time.Hour
	assert.Equal(t, 2*time.Second, b.NextBackOff())

	b.wait = 500 * time.Millisecond
	assert.Equal(t, 500*time.Millisecond, b.NextBackOff())
}

func TestClient_Do_CustomManageURLWithoutSlash(t *testing.T) {
	c, err := NewClient(Options{EnvironmentID: "e", APIKey: "k", ManageURL: "https://example.test/api"})
	require.NoError(t, err)

	got, err := c.url(Request{Path: "/items"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/api/v2/projects/e/items", got)
}

func TestParseRetryAfter(t *testing.T) {
	d, ok := parseRetryAfter("3")
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	_, ok = parseRetryAfter("")
	assert.False(t, ok)

	_, ok = parseRetryAfter("soon")
	assert.False(t, ok)

	d, ok = parseRetryAfter("3600")
	assert.True(t, ok)
	assert.Equal(t, time.Hour, d)
}
