// Package httpserver adapts go-supervisor's HTTP runner into a named
// supervisor runnable bound to one address.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// stateRunning is the go-supervisor runner state while serving.
const stateRunning = "Running"

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
)

// Timeouts applied to the listener. Zero values keep go-supervisor's defaults.
type Timeouts struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// DefaultTimeouts are used by the app1 listeners.
var DefaultTimeouts = Timeouts{
	ReadTimeout:  10 * time.Second,
	WriteTimeout: 30 * time.Second,
	IdleTimeout:  60 * time.Second,
	DrainTimeout: 10 * time.Second,
}

// serverImplementation abstracts the go-supervisor runner for tests.
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer runs a fixed route set on one address.
type HTTPServer struct {
	id       string
	address  string
	routes   []httpserver.Route
	timeouts Timeouts
	logger   *slog.Logger
	server   serverImplementation
}

// NewHTTPServer creates a server for the given routes. The listener is not
// opened until Run.
func NewHTTPServer(
	id, address string,
	routes []httpserver.Route,
	timeouts Timeouts,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("id", id)
	}

	s := &HTTPServer{
		id:       id,
		address:  address,
		routes:   routes,
		timeouts: timeouts,
		logger:   logger,
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(s.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	s.server = runner
	return s, nil
}

func (s *HTTPServer) buildConfig() (*httpserver.Config, error) {
	var options []httpserver.ConfigOption
	if s.timeouts.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(s.timeouts.ReadTimeout))
	}
	if s.timeouts.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(s.timeouts.WriteTimeout))
	}
	if s.timeouts.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.timeouts.IdleTimeout))
	}
	if s.timeouts.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.timeouts.DrainTimeout))
	}

	cfg, err := httpserver.NewConfig(s.address, s.routes, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return cfg, nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run starts the HTTP server and blocks until it stops.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Debug("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Debug("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

// IsRunning reports whether the runner is in the Running state.
func (s *HTTPServer) IsRunning() bool {
	if s.server == nil {
		return false
	}
	return s.server.GetState() == stateRunning
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

// ID returns the ID of this HTTP server
func (s *HTTPServer) ID() string {
	return s.id
}

// Address returns the address this server listens on
func (s *HTTPServer) Address() string {
	return s.address
}

// RouteCount returns the number of routes served.
func (s *HTTPServer) RouteCount() int {
	return len(s.routes)
}
