// Package client is the typed REST client for the cashbook API. It owns the
// wire envelope, error mapping, credential attachment, and the bounded
// refresh-and-retry handling of unauthorized responses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// SessionStore is the slice of the session the transport needs: credentials
// to attach, credential updates to record, and a wipe on terminal auth
// failure.
type SessionStore interface {
	Cookies() []*http.Cookie
	SetCookies(cookies []*http.Cookie) error
	Clear() error
}

// noRefreshPaths are the public auth routes: an unauthorized response from
// these is surfaced as-is, never answered with a refresh attempt.
var noRefreshPaths = []string{
	"/auth/login",
	"/auth/register",
	"/auth/refresh",
	"/auth/verify-email",
	"/auth/forgot-password",
	"/auth/reset-password",
}

// Client issues authenticated requests against the API base path.
type Client struct {
	baseURL string
	httpc   *http.Client
	session SessionStore
	logger  *slog.Logger

	// onUnauthenticated runs after the session has been cleared on a
	// terminal auth failure. Optional; must tolerate being nil.
	onUnauthenticated func()
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger sets the logger used for request/response debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUnauthenticatedHook registers a callback for terminal auth failures
// (after the session has been cleared).
func WithUnauthenticatedHook(hook func()) Option {
	return func(c *Client) { c.onUnauthenticated = hook }
}

// New creates a Client for the given base URL (including the /api/v1 prefix).
func New(baseURL string, sess SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		session: sess,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) del(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodDelete, path, body, out)
}

// do sends one request and decodes the envelope into out (ignored when nil).
// An unauthorized response outside the public auth routes triggers at most
// one silent refresh followed by a single replay; see send.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload, false)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// send performs the request, handling the auth-guard state machine. The
// retried flag is the per-request marker bounding retry amplification: a
// request is replayed at most once, after exactly one refresh attempt.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, retried bool) (*dto.Envelope, error) {
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("api request", slog.String("method", method), slog.String("path", path), slog.Bool("retry", retried))
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.logger.Debug("api response", slog.String("method", method), slog.String("path", path), slog.Int("status", resp.StatusCode))

	// Record any credential rotation regardless of outcome.
	if cookies := resp.Cookies(); len(cookies) > 0 {
		if err := c.session.SetCookies(cookies); err != nil {
			c.logger.Warn("failed to persist session cookies", slog.String("error", err.Error()))
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.handleUnauthorized(ctx, method, path, payload, retried, resp)
	}
	if resp.StatusCode >= 400 {
		return nil, parseError(resp)
	}

	var envelope dto.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if err == io.EOF {
			return &dto.Envelope{Success: true}, nil
		}
		return nil, fmt.Errorf("failed to decode %s %s envelope: %w", method, path, err)
	}
	return &envelope, nil
}

func (c *Client) handleUnauthorized(ctx context.Context, method, path string, payload []byte, retried bool, resp *http.Response) (*dto.Envelope, error) {
	authErr := parseError(resp)

	// Public auth routes never trigger a refresh.
	if isNoRefreshPath(path) {
		return nil, authErr
	}

	// Already replayed once: terminal failure. Never a second refresh.
	if retried {
		c.becomeUnauthenticated()
		return nil, authErr
	}

	if _, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, true); err != nil {
		c.logger.Debug("session refresh failed", slog.String("error", err.Error()))
		c.becomeUnauthenticated()
		return nil, err
	}
	return c.send(ctx, method, path, payload, true)
}

func (c *Client) becomeUnauthenticated() {
	if err := c.session.Clear(); err != nil {
		c.logger.Warn("failed to clear session", slog.String("error", err.Error()))
	}
	if c.onUnauthenticated != nil {
		c.onUnauthenticated()
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.session.Cookies() {
		req.AddCookie(cookie)
	}
	return req, nil
}

func isNoRefreshPath(path string) bool {
	for _, p := range noRefreshPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// parseError maps an error response body onto an APIError, falling back to
// the HTTP status text when the body is not the expected shape.
func parseError(resp *http.Response) error {
	apiErr := &apperrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var body dto.ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		if len(body.Errors) > 0 {
			apiErr.FieldErrors = body.Errors
		}
	}
	return apiErr
}
