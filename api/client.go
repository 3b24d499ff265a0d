// Package api provides the HTTP client used by every resource service. The
// client is bound to the backend base URL and injects the stored bearer
// token into each outgoing request; requests without a stored token go out
// unauthenticated.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/spotilike/go-client/internal/config"
	"github.com/spotilike/go-client/storage"
)

type Client struct {
	baseURL    string
	storage    storage.Repo
	httpClient *http.Client
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (primarily for tests).
// The bearer-injection transport is layered on top of whatever is provided.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(cfg config.Config, store storage.Repo, options ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[api.New] config is required")
	}
	if store == nil {
		return nil, errors.New("[api.New] storage repo is required")
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.GetAPIBaseURL(), "/"),
		storage:    store,
		httpClient: &http.Client{Timeout: cfg.GetHTTPTimeout()},
	}
	for _, opt := range options {
		opt(c)
	}

	next := c.httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	wrapped := *c.httpClient
	wrapped.Transport = &bearerTransport{storage: store, next: next}
	c.httpClient = &wrapped

	return c, nil
}

// bearerTransport reads the stored token before each request and, when one
// is present, sets the Authorization header. A missing token is not an
// error; the request simply goes out unauthenticated.
type bearerTransport struct {
	storage storage.Repo
	next    http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok, err := t.storage.Get(storage.TokenKey)
	if err != nil {
		log.Err(err).Msg("Failed to read stored token")
	}
	if ok && token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return t.next.RoundTrip(req)
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "[Client.do] marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "[Client.do] build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Str("method", method).Str("path", path).Err(err).Msg("Request failed without response")
		return &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("Request rejected")
		return &Error{Status: resp.StatusCode, Message: messageFromBody(data)}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "[Client.do] decode response body")
	}
	return nil
}

// messageFromBody extracts the backend's "message" field, tolerating bodies
// that are not the standard envelope.
func messageFromBody(data []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &env); err == nil {
		return env.Message
	}
	return ""
}
