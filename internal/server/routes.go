package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/app1/internal/server/handlers"
	"github.com/atlanticdynamic/app1/internal/server/metrics"
	"github.com/atlanticdynamic/app1/internal/server/middleware"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// routeOptions controls the middleware chain built around each handler.
type routeOptions struct {
	logger    *slog.Logger
	debug     bool
	collector *metrics.Collector
}

// buildRoutes converts the handler route table into go-supervisor routes.
// Middleware runs outermost first: request ID, access log, metrics, recovery,
// content type, method check.
func buildRoutes(table []handlers.Route, opts routeOptions) ([]httpserver.Route, error) {
	accessLog := middleware.NewAccessLogger(opts.logger)
	routes := make([]httpserver.Route, 0, len(table))

	for _, def := range table {
		chain := []httpserver.HandlerFunc{middleware.RequestID()}
		if !def.Quiet {
			chain = append(chain, accessLog.Middleware())
		}
		if opts.collector != nil {
			chain = append(chain, opts.collector.Middleware(def.Path))
		}
		chain = append(chain,
			middleware.Recovery(opts.logger, opts.debug),
			middleware.JSONContentType(),
			middleware.AllowMethods(def.Method, http.MethodHead),
		)

		route, err := httpserver.NewRouteFromHandlerFunc(def.Name, def.Path, def.Handler, chain...)
		if err != nil {
			return nil, fmt.Errorf("failed to create route %s: %w", def.Name, err)
		}
		routes = append(routes, *route)
	}
	return routes, nil
}
