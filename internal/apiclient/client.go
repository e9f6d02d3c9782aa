// Package apiclient is the HTTP transport for the catalog API. It speaks the
// server's envelope conventions and turns error bodies into *APIError values
// the classifier can inspect.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shelfdesk/internal/util"
)

const requestIDHeader = "X-Request-Id"

// TokenSource supplies the persisted bearer token, or "" when none is
// available. The client attaches the Authorization header only when a token
// is present.
type TokenSource func(ctx context.Context) (string, error)

// Client calls the catalog service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option tweaks client construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource wires the persisted-token lookup.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// NewClient constructs a catalog API client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and returns the raw success body. No retries: a
// failed call is reported once and the caller decides whether to re-invoke.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, util.NewID(8))
	if c.tokens != nil {
		if token, err := c.tokens(ctx); err == nil && strings.TrimSpace(token) != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, data)
	}
	return data, nil
}

// call is do plus envelope decoding under the given candidate keys.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, in any, keys ...string) (T, error) {
	var zero T
	data, err := c.do(ctx, method, path, query, in)
	if err != nil {
		return zero, err
	}
	return decodeEnvelope[T](data, keys...)
}
