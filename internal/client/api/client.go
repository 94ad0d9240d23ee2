package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/bookswap/internal/common"
	"github.com/dmitrijs2005/bookswap/internal/logging"
)

// Client talks to the BookSwap REST API. All calls funnel through do, which
// runs the hook pipeline and maps response statuses to errors uniformly.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	log           logging.Logger
	requestHooks  []RequestHook
	responseHooks []ResponseHook
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Useful for tests and
// for callers that need custom transport settings.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New constructs a Client for the given base URL. Hooks are usually added
// afterwards with Use/Observe, since the token source tends to be built
// around the client itself.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Use appends a request hook. Hooks run in registration order.
func (c *Client) Use(h RequestHook) {
	c.requestHooks = append(c.requestHooks, h)
}

// Observe appends a response hook. Hooks run in registration order, on
// every response, before status handling.
func (c *Client) Observe(h ResponseHook) {
	c.responseHooks = append(c.responseHooks, h)
}

// errorPayload is the shape the server uses to explain failures.
type errorPayload struct {
	Message string `json:"message"`
}

// do performs a single API call: builds the request, runs request hooks,
// sends it, runs response hooks, maps the status, and decodes a 2xx body
// into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, h := range c.requestHooks {
		if err := h(req); err != nil {
			return fmt.Errorf("request hook: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Response hooks run unconditionally, before the status is turned into
	// an error, so side effects like session invalidation cannot be skipped
	// by a caller that mishandles the returned error.
	for _, h := range c.responseHooks {
		if err := h(resp); err != nil {
			if c.log != nil {
				c.log.Warn(ctx, "response hook failed", "error", err)
			}
		}
	}

	if err := c.mapStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// mapStatus converts a non-2xx response into an error. 401 maps to
// ErrUnauthorized and 404 wraps ErrorNotFound; 5xx count as
// unavailability; every other failure becomes an APIError carrying the
// server's message, with a fixed fallback when the body has none.
func (c *Client) mapStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		// The server often explains a 401 (bad credentials on login);
		// keep its message alongside the sentinel.
		if msg := decodeErrorMessage(resp.Body); msg != "" {
			return &APIError{Status: resp.StatusCode, Message: msg, err: ErrUnauthorized}
		}
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		msg := decodeErrorMessage(resp.Body)
		if msg == "" {
			msg = "request failed"
		}
		apiErr := &APIError{Status: resp.StatusCode, Message: msg}
		if resp.StatusCode == http.StatusNotFound {
			apiErr.err = common.ErrorNotFound
		}
		return apiErr
	}
}

// decodeErrorMessage reads the server's {"message": ...} payload, if any.
func decodeErrorMessage(body io.Reader) string {
	var p errorPayload
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		return ""
	}
	return p.Message
}

// doJSON marshals payload (when non-nil) and performs a JSON call.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, body, contentType, out)
}
