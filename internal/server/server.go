// Package server assembles the app1 listeners and runs them under a
// go-supervisor process supervisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/app1/internal/config"
	"github.com/atlanticdynamic/app1/internal/server/handlers"
	"github.com/atlanticdynamic/app1/internal/server/httpserver"
	"github.com/atlanticdynamic/app1/internal/server/metrics"
	"github.com/robbyt/go-supervisor/supervisor"
)

const (
	appListenerID     = "app"
	metricsListenerID = "metrics"
)

var ErrNilConfig = errors.New("config cannot be nil")

// Server owns the application listener and, when enabled, the Prometheus listener.
type Server struct {
	cfg       *config.Config
	logger    *slog.Logger
	handlers  *handlers.Handlers
	collector *metrics.Collector
	listeners []*httpserver.HTTPServer
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger shared by the server components.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds the listeners described by cfg without opening any sockets.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.handlers = handlers.New(cfg.Environment, handlers.WithLogger(s.logger))
	if cfg.MetricsEnabled() {
		s.collector = metrics.NewCollector()
	}

	routes, err := buildRoutes(s.handlers.Routes(), routeOptions{
		logger:    s.logger,
		debug:     cfg.Debug,
		collector: s.collector,
	})
	if err != nil {
		return nil, err
	}

	app, err := httpserver.NewHTTPServer(
		appListenerID,
		cfg.ListenAddr(),
		routes,
		httpserver.DefaultTimeouts,
		s.logger.WithGroup("httpserver").With("id", appListenerID),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create application listener: %w", err)
	}
	s.listeners = append(s.listeners, app)

	if s.collector != nil {
		metricRoutes, err := s.collector.Routes()
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics routes: %w", err)
		}
		ml, err := httpserver.NewHTTPServer(
			metricsListenerID,
			cfg.MetricsListenAddr(),
			metricRoutes,
			httpserver.DefaultTimeouts,
			s.logger.WithGroup("httpserver").With("id", metricsListenerID),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics listener: %w", err)
		}
		s.listeners = append(s.listeners, ml)
	}

	return s, nil
}

// Runnables returns the listeners in start order.
func (s *Server) Runnables() []supervisor.Runnable {
	runnables := make([]supervisor.Runnable, 0, len(s.listeners))
	for _, l := range s.listeners {
		runnables = append(runnables, l)
	}
	return runnables
}

// Listeners returns the configured listeners.
func (s *Server) Listeners() []*httpserver.HTTPServer {
	return s.listeners
}

// Run serves until ctx is cancelled or the process receives SIGINT/SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting App1", "port", s.cfg.Port, "debug", s.cfg.Debug)
	if s.collector != nil {
		s.logger.Info("Metrics server enabled", "address", s.cfg.MetricsListenAddr())
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(s.logger.WithGroup("supervisor").Handler()),
		supervisor.WithRunnables(s.Runnables()...),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	s.logger.Debug("Server shutdown complete")
	return nil
}

// Run builds a Server from cfg and runs it.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	s, err := New(cfg, WithLogger(logger))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
