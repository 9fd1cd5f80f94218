package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultURL is the public npm registry.
	DefaultURL = "https://registry.npmjs.org"

	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "npmdocs-mcp/0.1.0"

	tracerName = "github.com/viant/npmdocs-mcp/registry"
)

// Client looks up package metadata on an npm-compatible registry.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	tracer    trace.Tracer
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at another registry (mirror, test server).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

// WithTimeout sets the HTTP client timeout; zero keeps the default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http = &http.Client{Timeout: timeout}
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTracer sets the tracer used for the registry.fetch span.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// NewClient creates a registry client. Without options it talks to the
// public npm registry using the global OpenTelemetry tracer provider.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultURL,
		userAgent: DefaultUserAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

// BaseURL returns the registry base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Fetch retrieves metadata for the named package.
func (c *Client) Fetch(ctx context.Context, name string) (*Package, error) {
	ctx, span := c.tracer.Start(ctx, "registry.fetch", trace.WithAttributes(
		attribute.String("npm.package", name),
		attribute.String("npm.registry", c.baseURL),
	))
	defer span.End()

	pkg, err := c.fetch(ctx, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("npm.version", pkg.Version))
	span.SetStatus(codes.Ok, "")
	return pkg, nil
}

func (c *Client) fetch(ctx context.Context, name string) (*Package, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build registry request %q: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode}
	}

	pkg := &Package{}
	if err := json.NewDecoder(resp.Body).Decode(pkg); err != nil {
		return nil, fmt.Errorf("decode registry response for %q: %w", name, err)
	}
	return pkg, nil
}
