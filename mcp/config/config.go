package config

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"github.com/viant/npmdocs-mcp/registry"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration.
type Config struct {
	Server   *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Registry *Registry          `yaml:"registry,omitempty" json:"registry,omitempty"`
	Log      *Log               `yaml:"log,omitempty" json:"log,omitempty"`
}

// Registry configures the upstream npm registry.
type Registry struct {
	URL       string `yaml:"url,omitempty" json:"url,omitempty"`
	TimeoutMs int    `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty"`
	UserAgent string `yaml:"userAgent,omitempty" json:"userAgent,omitempty"`
}

// Timeout returns the HTTP timeout for a single lookup.
func (r *Registry) Timeout() time.Duration {
	return time.Duration(r.TimeoutMs) * time.Millisecond
}

// Log configures the stderr logger.
type Log struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

// Load downloads and parses a config from any afs supported location
// (local path, file://, mem://, ...). Defaults are applied.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return cfg, nil
}

// Parse decodes YAML (or JSON) config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Init()
	return cfg, nil
}

// Init fills in defaults for every optional section.
func (c *Config) Init() {
	if c.Registry == nil {
		c.Registry = &Registry{}
	}
	if c.Registry.URL == "" {
		c.Registry.URL = registry.DefaultURL
	}
	if c.Registry.TimeoutMs == 0 {
		c.Registry.TimeoutMs = int(registry.DefaultTimeout / time.Millisecond)
	}
	if c.Registry.UserAgent == "" {
		c.Registry.UserAgent = registry.DefaultUserAgent
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Log.Level == "" {
		c.Log.Level = log.InfoLevel.String()
	}
}

// Validate checks the config; call Init first.
func (c *Config) Validate() error {
	if c.Registry != nil {
		u, err := url.Parse(c.Registry.URL)
		if err != nil {
			return fmt.Errorf("invalid registry url %q: %w", c.Registry.URL, err)
		}
		if scheme := strings.ToLower(u.Scheme); (scheme != "http" && scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid registry url %q: expected http(s)://host", c.Registry.URL)
		}
		if c.Registry.TimeoutMs < 0 {
			return fmt.Errorf("invalid registry timeoutMs %d: must not be negative", c.Registry.TimeoutMs)
		}
	}
	if c.Log != nil {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
		}
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() log.Level {
	if c.Log == nil {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
