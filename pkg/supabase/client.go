// Package supabase is a thin HTTP client for a hosted Supabase project:
// the auth endpoints under /auth/v1 and the PostgREST table endpoints under
// /rest/v1. A Client is configured once from a base URL and an API key and is
// safe for concurrent use; construct a second client from the service-role
// key for operations that must bypass row-level security.
package supabase

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
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client for the project at baseURL authorized with apiKey.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// newRequest builds a provider request. The apikey header always carries the
// client's key; the bearer token defaults to the key itself, matching how the
// hosted service authorizes anonymous and service-role calls.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, bearer string, payload any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// send executes req and decodes a 2xx body into out (skipped when out is nil
// or the body is empty). Non-2xx responses come back as *APIError.
func (c *Client) send(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to provider failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newAPIError(res.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
