// Package publicapi talks to the crowdfunding platform's public REST API.
package publicapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/givefund/give/internal/domain"
	"github.com/givefund/give/internal/metrics"
	"github.com/givefund/give/internal/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx upstream response.
	ErrUnexpectedStatus = errors.New("unexpected status from public api")
	// ErrNotArray is returned when the events endpoint answers with something
	// other than a JSON array.
	ErrNotArray = errors.New("events response is not an array")
	// ErrInvalidImagePath is returned for image paths that are absolute or
	// leave the images directory.
	ErrInvalidImagePath = errors.New("invalid image path")
)

const (
	endpointEvents = "events"
	endpointImages = "images"
)

// Client fetches events and images from the public API. It never retries.
type Client struct {
	baseURL    string
	eventsPath string
	http       *http.Client
	tracer     trace.Tracer
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer sets the tracer used for upstream spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL, eventsPath string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		eventsPath: eventsPath,
		http:       &http.Client{Timeout: timeout},
		tracer:     noop.NewTracerProvider().Tracer(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Events performs a single GET of the event list.
func (c *Client) Events(ctx context.Context) (events []domain.Event, err error) {
	endpoint := c.baseURL + c.eventsPath

	ctx, span := c.tracer.Start(ctx, "publicapi.Events", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("http.url", endpoint))
	started := time.Now()
	defer func() {
		c.metrics.ObserveAPI(endpointEvents, started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("events.count", len(events)))
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build events request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch events: %w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read events body: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	// A malformed record drops that record only.
	events = make([]domain.Event, 0, len(raw))
	skipped := 0
	for i, item := range raw {
		var event domain.Event
		if err := json.Unmarshal(item, &event); err != nil {
			skipped++
			middleware.FromContext(ctx).Warn("Skipping malformed event", "index", i, "error", err)
			continue
		}
		events = append(events, event)
	}
	span.SetAttributes(attribute.Int("events.skipped", skipped))
	return events, nil
}

// Image opens the image stored at relativePath. The caller closes the body.
// Non-2xx responses are closed here and reported as ErrUnexpectedStatus.
func (c *Client) Image(ctx context.Context, relativePath string) (resp *http.Response, err error) {
	relativePath, err = validImagePath(relativePath)
	if err != nil {
		return nil, err
	}
	endpoint := ImageURL(c.baseURL, (&url.URL{Path: relativePath}).EscapedPath())

	ctx, span := c.tracer.Start(ctx, "publicapi.Image", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("http.url", endpoint))
	started := time.Now()
	defer func() {
		c.metrics.ObserveAPI(endpointImages, started, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err = c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch image %q: %w: %d", relativePath, ErrUnexpectedStatus, resp.StatusCode)
	}
	return resp, nil
}

// CleanImagePath unescapes a relative image path taken from a request URL and
// validates it like Image does.
func CleanImagePath(raw string) (string, error) {
	rel, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImagePath, err)
	}
	return validImagePath(rel)
}

// validImagePath rejects paths that are empty, absolute, or contain "." or
// ".." segments, and returns the cleaned path.
func validImagePath(rel string) (string, error) {
	if rel == "" || strings.HasPrefix(rel, "/") || strings.Contains(rel, "\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, rel)
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidImagePath, rel)
		}
	}
	return path.Clean(rel), nil
}

// ImageURL addresses an uploaded image: {base}/api/images/{relativePath}.
func ImageURL(base, relativePath string) string {
	return strings.TrimRight(base, "/") + "/api/images/" + strings.TrimLeft(relativePath, "/")
}
