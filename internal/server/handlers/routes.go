package handlers

import "net/http"

// Route binds a path to one of the handlers. Every route answers GET (and HEAD).
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler http.HandlerFunc

	// Quiet routes produce no access message from the handler itself.
	Quiet bool
}

// Routes returns the route table in registration order.
func (h *Handlers) Routes() []Route {
	return []Route{
		{Name: "index", Method: http.MethodGet, Path: "/", Handler: h.Index},
		{Name: "health", Method: http.MethodGet, Path: "/health", Handler: h.Health},
		{Name: "metrics", Method: http.MethodGet, Path: "/metrics", Handler: h.Metrics, Quiet: true},
	}
}
