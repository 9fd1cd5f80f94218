package mcp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/viant/npmdocs-mcp/mcp/config"
	"github.com/viant/npmdocs-mcp/registry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/npmdocs-mcp/mcp"

// Fetcher retrieves package metadata by name.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*registry.Package, error)
}

// Service bundles configuration, the registry fetcher and the tool catalog.
// It holds no per-request state, so it is safe to share across connections.
type Service struct {
	config  *config.Config
	fetcher Fetcher
	logger  *log.Logger
	tracer  trace.Tracer
}

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted defaults are
// assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithFetcher overrides the registry client built from the configuration.
func WithFetcher(fetcher Fetcher) Option {
	return func(s *Service) {
		s.fetcher = fetcher
	}
}

// WithLogger sets the logger; it must not write to stdout when serving stdio.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer sets the tracer used for tool.invoke spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a new service instance.
func New(opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) init() error {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	if s.fetcher == nil {
		s.fetcher = registry.NewClient(
			registry.WithBaseURL(s.config.Registry.URL),
			registry.WithTimeout(s.config.Registry.Timeout()),
			registry.WithUserAgent(s.config.Registry.UserAgent),
		)
	}
	return nil
}

// Config returns the effective configuration.  Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Logger returns the service logger.
func (s *Service) Logger() *log.Logger { return s.logger }
