package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/catalog/core/event"
	"github.com/dmitrymomot/catalog/core/logger"
)

const maxResponseSize = 10 << 20

// TokenSource provides the bearer token for outgoing requests. An empty token means
// the request is sent without credentials.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Unauthorized is published whenever the API answers 401. Token is the credential the
// request carried, so observers can tell a stale session from the current one.
type Unauthorized struct {
	Method    string
	Path      string
	Token     string
	RequestID string
}

// Client performs JSON requests against the catalog API.
type Client struct {
	baseURL      string
	http         *http.Client
	tokens       TokenSource
	events       event.Publisher
	logger       *slog.Logger
	userAgent    string
	newRequestID func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithPublisher sets the observer notified of 401 responses.
func WithPublisher(p event.Publisher) Option {
	return func(c *Client) {
		c.events = p
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRequestIDGenerator replaces the X-Request-ID generator (default: UUID v4).
func WithRequestIDGenerator(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newRequestID = fn
		}
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidBaseURL
	}

	c := &Client{
		baseURL:      strings.TrimRight(u.String(), "/"),
		http:         &http.Client{Timeout: 15 * time.Second},
		logger:       slog.Default(),
		userAgent:    "catalog-client",
		newRequestID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends a request with an optional JSON body and decodes a JSON response into out
// (when out is non-nil and the body is not empty). Path is appended to the base URL and
// may carry a query string.
//
// Failures are *Error values matching ErrUnauthorized, ErrRemote, ErrNetwork or
// ErrUnexpected; a cancelled context is returned as the context error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return unexpectedError(err)
	}

	token := c.attachToken(ctx, req)
	requestID := req.Header.Get("X-Request-ID")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.WarnContext(ctx, "request failed without response",
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return networkError(err)
	}

	c.logger.DebugContext(ctx, "api request",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Latency(time.Since(start)),
		logger.RequestID(requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := remoteError(resp.StatusCode, data)
		if resp.StatusCode == http.StatusUnauthorized {
			c.notifyUnauthorized(ctx, Unauthorized{
				Method:    method,
				Path:      path,
				Token:     token,
				RequestID: requestID,
			})
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: MessageUnexpected, kind: ErrUnexpected, cause: err}
	}
	return nil
}

// Ping reports whether the API answers at all. Any HTTP response counts, including
// errors; only a missing response fails with ErrNetwork. No credentials are sent.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodHead, "/", nil)
	if err != nil {
		return unexpectedError(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return networkError(err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
	return resp.Body.Close()
}

// Get is shorthand for Do with GET and no body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post is shorthand for Do with POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put is shorthand for Do with PUT.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete is shorthand for Do with DELETE and no body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("X-Request-ID", c.newRequestID())

	return req, nil
}

// attachToken sets the bearer credential when the token source has one and returns it.
// A failing token source is logged and the request goes out anonymously.
func (c *Client) attachToken(ctx context.Context, req *http.Request) string {
	if c.tokens == nil {
		return ""
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to read session token", logger.Error(err))
		return ""
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return token
}

func (c *Client) notifyUnauthorized(ctx context.Context, evt Unauthorized) {
	if c.events == nil {
		return
	}
	// Observers run even if the caller's context is already done.
	if err := c.events.Publish(context.WithoutCancel(ctx), evt); err != nil {
		c.logger.ErrorContext(ctx, "unauthorized handler failed",
			logger.Path(evt.Path),
			logger.Error(err),
		)
	}
}
