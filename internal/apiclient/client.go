package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
)

// APIError is an application-level rejection: the upstream API
// answered but declined the operation and supplied a message meant
// for the user (bad credentials, duplicate user, ...).
//
// Every other failure (network unreachable, timeout, malformed
// response, unexpected HTTP status) comes back as a plain wrapped
// error; callers fall back to a generic message for those.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is the typed wrapper over the upstream scheduling REST API.
// Fire-once semantics: no retry; the only timeout is the HTTP
// client's, and every call is bound to the caller's context so an
// abandoned page load cancels its upstream request.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a Client for the configured upstream API.
func New(cfg *config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// get performs a GET against path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	return c.do(req, out)
}

// post performs a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling upstream api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream api rejected request",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("upstream api returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
