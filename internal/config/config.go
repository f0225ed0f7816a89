// Package config holds the process configuration for app1.
//
// Every setting is sourced from the environment. Values are parsed once at
// startup, except ENV, which is looked up again each time Environment is called
// so that a change between requests is observable.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	EnvPort        = "PORT"
	EnvDebug       = "DEBUG"
	EnvEnvironment = "ENV"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogOutput   = "LOG_OUTPUT"
	EnvMetricsPort = "METRICS_PORT"

	DefaultPort        = 8000
	DefaultEnvironment = "unknown"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = LogFormatText
	DefaultLogOutput   = "stderr"

	// ListenHost binds every interface.
	ListenHost = "0.0.0.0"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error"}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Raw holds the unparsed string form of each setting, as read from flags or
// the environment. Empty fields fall back to their defaults.
type Raw struct {
	Port        string
	Debug       string
	LogLevel    string
	LogFormat   string
	LogOutput   string
	MetricsPort string
}

// Config is the parsed, read-only configuration shared by the server and its handlers.
type Config struct {
	Port        int
	Debug       bool
	LogLevel    string
	LogFormat   string
	LogOutput   string
	MetricsPort int

	lookup LookupFunc
}

// Option configures a Config during Load.
type Option func(*Config)

// WithLookup replaces the environment lookup used by Environment.
func WithLookup(fn LookupFunc) Option {
	return func(c *Config) {
		if fn != nil {
			c.lookup = fn
		}
	}
}

// Load parses the raw values and validates the result.
func Load(raw Raw, opts ...Option) (*Config, error) {
	port, err := ParsePort(raw.Port, DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToLoadConfig, EnvPort, err)
	}

	metricsPort, err := ParsePort(raw.MetricsPort, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToLoadConfig, EnvMetricsPort, err)
	}

	cfg := &Config{
		Port:        port,
		Debug:       ParseDebug(raw.Debug),
		LogLevel:    valueOrDefault(raw.LogLevel, DefaultLogLevel),
		LogFormat:   strings.ToLower(valueOrDefault(raw.LogFormat, DefaultLogFormat)),
		LogOutput:   valueOrDefault(raw.LogOutput, DefaultLogOutput),
		MetricsPort: metricsPort,
		lookup:      os.LookupEnv,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParsePort parses a decimal port number. An empty string yields fallback.
// The range is not checked here, an unusable port fails at bind time.
func ParsePort(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPort, s)
	}
	return port, nil
}

// ParseDebug reports whether s is "true", ignoring case. Any other value,
// including "1" or "yes", disables debug mode.
func ParseDebug(s string) bool {
	return strings.EqualFold(s, "true")
}

// Environment returns the current value of ENV, or DefaultEnvironment when unset.
func (c *Config) Environment() string {
	lookup := c.lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvEnvironment); ok {
		return v
	}
	return DefaultEnvironment
}

// ListenAddr is the application listener address.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(ListenHost, strconv.Itoa(c.Port))
}

// MetricsEnabled reports whether the Prometheus listener should run.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort != 0
}

// MetricsListenAddr is the Prometheus listener address, or "" when disabled.
func (c *Config) MetricsListenAddr() string {
	if !c.MetricsEnabled() {
		return ""
	}
	return net.JoinHostPort(ListenHost, strconv.Itoa(c.MetricsPort))
}

func valueOrDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
