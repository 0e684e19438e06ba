// Package upstream talks to the e-Jagriti services API. Every call returns the
// envelope's data on success or an *Error describing why the call failed.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lexi/internal/jagriti/metrics"
	"lexi/pkg/requestcontext"
)

const (
	defaultTimeout = 15 * time.Second
	// maxErrorBody bounds how much of a non-2xx body is kept for diagnostics.
	maxErrorBody = 512
)

// Config holds the upstream connection settings.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client executes single, unretried calls against the upstream API.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *http.Client
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Client)

// WithHTTPClient overrides the transport, e.g. with an httptest server client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New builds a client. BaseURL must be an absolute http(s) URL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid upstream base URL %q", cfg.BaseURL)
	}

	c := &Client{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		http:      &http.Client{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:    otel.Tracer("lexi/internal/jagriti/upstream"),
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// envelope is the wrapper every upstream response uses.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   flag            `json:"error"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
}

// flag accepts the envelope's error field as either "false"/"true" or a bool.
type flag string

func (f *flag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flag(s)
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flag(strconv.FormatBool(v))
	return nil
}

func (e envelope) ok() bool {
	return strings.EqualFold(string(e.Error), "false") &&
		e.Status == http.StatusOK &&
		len(e.Data) > 0 &&
		!bytes.Equal(bytes.TrimSpace(e.Data), []byte("null"))
}

// Fetch performs one GET or POST against baseURL+path and unwraps the envelope.
// For POST, body is JSON-encoded; a nil body is sent as {}.
func (c *Client) Fetch(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	endpoint := endpointLabel(path)
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "jagriti.upstream "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", endpoint),
		),
	)
	defer span.End()

	data, status, err := c.do(ctx, method, path, body)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	outcome := "ok"
	if err != nil {
		var ue *Error
		if errors.As(err, &ue) {
			ue.Endpoint = endpoint
			outcome = string(ue.Category)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.logger.WarnContext(ctx, "upstream call failed",
			"request_id", requestcontext.RequestID(ctx),
			"method", method,
			"endpoint", endpoint,
			"outcome", outcome,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
	} else {
		c.logger.DebugContext(ctx, "upstream call succeeded",
			"request_id", requestcontext.RequestID(ctx),
			"method", method,
			"endpoint", endpoint,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))
	return data, err
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, &Error{
			Category:   ErrorBadStatus,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(http.StatusText(resp.StatusCode) + " " + string(snippet)),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if isTimeout(err) {
			return nil, resp.StatusCode, &Error{Category: ErrorTimeout, Message: "reading response body", Underlying: err}
		}
		return nil, resp.StatusCode, &Error{Category: ErrorBadData, StatusCode: resp.StatusCode, Message: "malformed response envelope", Underlying: err}
	}
	if !env.ok() {
		return nil, resp.StatusCode, &Error{
			Category:   ErrorEnvelope,
			StatusCode: env.Status,
			Message:    env.Message,
		}
	}
	return env.Data, resp.StatusCode, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if method == http.MethodPost {
		if body == nil {
			body = struct{}{}
		}
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Category: ErrorBadData, Message: "encode request body", Underlying: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &Error{Category: ErrorTransport, Message: "build request", Underlying: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func classifyTransport(err error) *Error {
	if isTimeout(err) {
		return &Error{Category: ErrorTimeout, Message: "request timed out", Underlying: err}
	}
	return &Error{Category: ErrorTransport, Message: "request failed", Underlying: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
