// Package client implements the REST transport for the Overseer configuration
// API: authentication, header construction, retry with exponential backoff,
// and the mapping of HTTP statuses to typed errors.
//
// The object framework (pkg/object) talks to this client through its
// object.Requester interface; application code normally only calls New and
// Login here and does everything else through pkg/object and pkg/objects.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client is a connection to one Overseer instance. It is safe for concurrent
// use; the authentication token is the only mutable state.
type Client struct {
	cfg    *Config
	http   *http.Client
	logger hclog.Logger
	base   string

	mu    sync.RWMutex
	token string
}

// New creates a Client from cfg. Missing optional settings are filled from
// DefaultConfig; the result is validated before any connection is attempted.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	defaults := DefaultConfig()
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = defaults.MaxRetries
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = defaults.RetryDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return &Client{
		cfg:    cfg,
		http:   cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("overseer-client"),
		base:   strings.TrimRight(cfg.URL, "/") + "/rest",
	}, nil
}

// Login authenticates against the instance and stores the returned token for
// subsequent requests.
func (c *Client) Login(ctx context.Context) error {
	body := map[string]string{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	}

	raw, err := c.do(ctx, http.MethodPost, "/login", nil, body, false)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}
	if resp.Token == "" {
		return fmt.Errorf("login response contained no token")
	}

	c.mu.Lock()
	c.token = resp.Token
	c.mu.Unlock()

	c.logger.Debug("logged in", "username", c.cfg.Username)
	return nil
}

// Get issues an authenticated GET and returns the raw JSON payload.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params, nil, true)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, params, body, true)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, params, body, true)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, params, nil, true)
}

// do performs one request with retries. Throttled (429) and 5xx responses and
// transport-level failures are retried with exponential backoff up to
// MaxRetries; everything else fails immediately.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body interface{}, authed bool) (json.RawMessage, error) {
	endpoint := c.base + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.cfg.RetryDelay

	attempt := func() (json.RawMessage, error) {
		raw, err := c.roundTrip(ctx, method, endpoint, path, payload, authed)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return raw, err
	}

	return backoff.RetryWithData(attempt, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(c.cfg.MaxRetries)), ctx))
}

// roundTrip performs a single HTTP exchange.
func (c *Client) roundTrip(ctx context.Context, method, endpoint, path string, payload []byte, authed bool) (json.RawMessage, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()
		if token != "" {
			req.Header.Set("X-Overseer-Username", c.cfg.Username)
			req.Header.Set("X-Overseer-Token", token)
		}
	}

	c.logger.Debug("request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := statusError(resp.StatusCode, path, raw)
		c.logger.Debug("request failed", "method", method, "path", path,
			"status", resp.StatusCode, "request_id", requestID, "error", err)
		return nil, err
	}

	return raw, nil
}
