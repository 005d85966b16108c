// Package client is a typed consumer of the NavSwara commerce REST API.
// Every endpoint answers a JSON envelope carrying a success flag plus
// either payload fields or a message; user-scoped endpoints authenticate
// through the "token" request header.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a business-rule rejection returned by the API with
// success=false; its message is meant to be shown to the user verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request rejected by API"
	}
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying transport, used by tests and
// callers that need custom timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is embedded in every response struct.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type enveloped interface {
	ok() bool
	message() string
}

func (e *envelope) ok() bool        { return e.Success }
func (e *envelope) message() string { return e.Message }

// do issues one API call. A non-empty token is sent in the "token"
// header. The decoded envelope's success flag decides the outcome: a
// false flag becomes an *APIError regardless of HTTP status.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out enveloped) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response (status %d): %w", method, path, resp.StatusCode, err)
	}
	if !out.ok() {
		return &APIError{Message: out.message()}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path, token string, out enveloped) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body any, out enveloped) error {
	if body == nil {
		body = struct{}{}
	}
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body any, out enveloped) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string, out enveloped) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, out)
}
