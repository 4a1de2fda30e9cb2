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
	"time"

	"github.com/google/uuid"
	slogctx "github.com/veqryn/slog-context"

	"github.com/dmitrijs2005/unievents/internal/common"
	"github.com/dmitrijs2005/unievents/internal/logging"
)

const defaultTimeout = 10 * time.Second

// maxErrorBody bounds how much of a failed response is read looking for a
// payload.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL      *url.URL
	httpClient   *http.Client
	interceptors []Interceptor
	logger       logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout (10s by default).
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithInterceptor appends an interceptor; interceptors run in the order
// they were added.
func WithInterceptor(i Interceptor) Option {
	return func(c *HTTPClient) { c.interceptors = append(c.interceptors, i) }
}

// New creates an HTTPClient for baseURL. When tokens is non-nil a bearer
// interceptor reading from it is installed first.
func New(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &HTTPClient{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if tokens != nil {
		c.interceptors = append([]Interceptor{NewBearerInterceptor(tokens, c.logger)}, c.interceptors...)
	}
	return c, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// resolve joins path onto the base address keeping its path prefix, so
// "http://h/api" + "/login" is "http://h/api/login".
func (c *HTTPClient) resolve(path string) string {
	u := *c.baseURL
	rel, query, _ := strings.Cut(path, "?")
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(rel, "/")
	u.RawPath = ""
	if query != "" {
		u.RawQuery = query
	}
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	requestID := uuid.NewString()
	ctx = slogctx.Append(ctx, "request_id", requestID)

	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), reader)
	if err != nil {
		return &Error{Op: op, Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", common.ContentTypeJSON)
	req.Header.Set("Accept", common.ContentTypeJSON)
	req.Header.Set(common.RequestIDHeaderName, requestID)

	for _, intercept := range c.interceptors {
		if err := intercept(ctx, req); err != nil {
			return &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("request interceptor: %w", err)}
		}
	}

	c.logger.Debug(ctx, "sending request", "op", op)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "op", op, "error", err)
		return transportError(op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "response received", "op", op, "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp.StatusCode, readPayload(resp.Body))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(op, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Op: op, Kind: KindDecode, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// readPayload returns nil when the body is not a JSON object with a
// message or error field.
func readPayload(r io.Reader) *ErrorPayload {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return nil
	}
	var p ErrorPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	if p.Text() == "" {
		return nil
	}
	return &p
}
