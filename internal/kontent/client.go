// Package kontent is a small client for the Kontent.ai Management and Delivery
// REST APIs. Responses are decoded into generic JSON values.
package kontent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultManageURL   = "https://manage.kontent.ai/"
	DefaultDeliveryURL = "https://deliver.kontent.ai/"

	// SourceHeader identifies the calling integration to Kontent.ai.
	SourceHeader       = "X-KC-SOURCE"
	continuationHeader = "X-Continuation"

	defaultTimeout      = 30 * time.Second
	defaultMaxRetryWait = 30 * time.Second
)

// API selects which Kontent.ai API a request targets.
type API int

const (
	Management API = iota
	Delivery
)

// Options configures a Client.
type Options struct {
	EnvironmentID string
	APIKey        string
	ManageURL     string // base URL; "v2/projects/{environment}/" is appended
	DeliveryURL   string // base URL; "{environment}/" is appended
	Source        string // value of the X-KC-SOURCE header
	Timeout       time.Duration
	MaxRetries    int           // retries after the first attempt; 0 disables retrying
	RetryWait     time.Duration // initial backoff interval
	MaxRetryWait  time.Duration // upper bound for any single wait, Retry-After included
	Headers       map[string]string
	HTTPClient    *http.Client
}

// Client talks to one Kontent.ai environment.
type Client struct {
	environmentID string
	apiKey        string
	manageBase    string
	deliveryBase  string
	source        string
	maxRetries    int
	retryWait     time.Duration
	maxRetryWait  time.Duration
	headers       map[string]string
	httpClient    *http.Client
}

// NewClient validates opts and returns a Client.
func NewClient(opts Options) (*Client, error) {
	if opts.EnvironmentID == "" {
		return nil, errors.New("KONTENT_ENVIRONMENT_ID is not set")
	}
	if opts.APIKey == "" {
		return nil, errors.New("KONTENT_API_KEY is not set")
	}
	manage := opts.ManageURL
	if manage == "" {
		manage = DefaultManageURL
	}
	deliver := opts.DeliveryURL
	if deliver == "" {
		deliver = DefaultDeliveryURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	retries := max(opts.MaxRetries, 0)
	maxWait := opts.MaxRetryWait
	if maxWait <= 0 {
		maxWait = defaultMaxRetryWait
	}

	env := url.PathEscape(opts.EnvironmentID)
	return &Client{
		environmentID: opts.EnvironmentID,
		apiKey:        opts.APIKey,
		manageBase:    withSlash(manage) + "v2/projects/" + env + "/",
		deliveryBase:  withSlash(deliver) + env + "/",
		source:        opts.Source,
		maxRetries:    retries,
		retryWait:     opts.RetryWait,
		maxRetryWait:  maxWait,
		headers:       opts.Headers,
		httpClient:    hc,
	}, nil
}

// EnvironmentID returns the environment this client is bound to.
func (c *Client) EnvironmentID() string { return c.environmentID }

// Request describes one API call. Path is relative to the environment root.
type Request struct {
	API          API
	Method       string
	Path         string
	Query        url.Values
	Body         any
	Continuation string
	Headers      map[string]string
}

// Response is a decoded API response. Data is nil for empty bodies.
type Response struct {
	Status       int
	Data         any
	Continuation string
}

// Do sends req, retrying throttled and server-side failures.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	target, err := c.url(req)
	if err != nil {
		return nil, err
	}

	var body []byte
	if req.Body != nil {
		body, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	exp := backoff.NewExponentialBackOff()
	if c.retryWait > 0 {
		exp.InitialInterval = c.retryWait
	}
	exp.MaxInterval = c.maxRetryWait
	policy := &retryAfterBackOff{BackOff: exp, max: c.maxRetryWait}
	var out *Response
	op := func() error {
		resp, wait, err := c.send(ctx, req, target, body)
		policy.wait = wait
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		out = resp
		return nil
	}
	notify := func(err error, next time.Duration) {
		slog.Warn("kontent request retry", "method", req.Method, "path", req.Path, "in", next, "err", err)
	}

	err = backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx), notify)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// send performs a single attempt. The duration is the server's Retry-After
// hint for throttled responses.
func (c *Client) send(ctx context.Context, req Request, target string, body []byte) (*Response, time.Duration, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, backoff.Permanent(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.API == Management {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.source != "" {
		httpReq.Header.Set(SourceHeader, c.source)
	}
	if req.Continuation != "" {
		httpReq.Header.Set(continuationHeader, req.Continuation)
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response: %w", err)
	}
	slog.Debug("kontent request", "method", method, "path", req.Path, "status", resp.StatusCode, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		if !retryable(resp.StatusCode) {
			return nil, 0, backoff.Permanent(apiErr)
		}
		wait, _ := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, wait, apiErr
	}

	out := &Response{Status: resp.StatusCode, Continuation: resp.Header.Get(continuationHeader)}
	if len(bytes.TrimSpace(raw)) == 0 {
		return out, 0, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out.Data); err != nil {
		return nil, 0, backoff.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return out, 0, nil
}

func (c *Client) url(req Request) (string, error) {
	base := c.manageBase
	if req.API == Delivery {
		base = c.deliveryBase
	}
	u, err := url.Parse(base + strings.TrimPrefix(req.Path, "/"))
	if err != nil {
		return "", fmt.Errorf("build url: %w", err)
	}
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}
	return u.String(), nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d, true
		}
	}
	return 0, false
}

func withSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
