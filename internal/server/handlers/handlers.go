// Package handlers implements the app1 HTTP endpoints.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// EnvironmentFunc returns the current deployment environment name. It is
// called on every request.
type EnvironmentFunc func() string

// Handlers serves the app1 routes.
type Handlers struct {
	logger      *slog.Logger
	environment EnvironmentFunc
}

// Option configures Handlers.
type Option func(*Handlers)

// WithLogger sets the logger used for access messages.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handlers) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates the handler set. environment must not be nil.
func New(environment EnvironmentFunc, opts ...Option) *Handlers {
	h := &Handlers{
		logger:      slog.Default().WithGroup("handlers"),
		environment: environment,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Index greets the caller and reports the environment.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	// "/" is registered as a subtree pattern, so reject everything below it here.
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}

	env := h.environment()
	h.logger.Info("Hello endpoint accessed", "environment", env)
	WriteJSON(w, http.StatusOK, IndexResponse{
		Message:     Greeting,
		Environment: env,
		App:         AppName,
		Version:     AppVersion,
	})
}

// Health reports a fixed healthy status.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("Health check endpoint accessed")
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  StatusHealthy,
		App:     AppName,
		Version: AppVersion,
	})
}

// Metrics reports the running status and environment. It does not log.
func (h *Handlers) Metrics(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, MetricsResponse{
		App:         AppName,
		Status:      StatusRunning,
		Environment: h.environment(),
	})
}

// NotFound writes a JSON 404.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
}

// WriteJSON encodes body as the response. The Content-Type header is set if
// no middleware has set one already.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	// Encode only fails on a broken connection, which the transport handles.
	_ = json.NewEncoder(w).Encode(body)
}
