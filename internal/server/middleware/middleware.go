// Package middleware provides the go-supervisor request-chain middlewares
// wrapped around every app1 route.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/atlanticdynamic/app1/internal/server/handlers"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// ContentTypeJSON is set on every application response.
const ContentTypeJSON = "application/json"

// JSONContentType sets the response Content-Type before the handler runs.
func JSONContentType() httpserver.HandlerFunc {
	return supervisorHeaders.NewWithOperations(
		supervisorHeaders.WithSet(http.Header{"Content-Type": []string{ContentTypeJSON}}),
	)
}

// AllowMethods answers 405 with an Allow header for any method not listed and
// stops the chain so the route handler never runs.
func AllowMethods(methods ...string) httpserver.HandlerFunc {
	allow := strings.Join(methods, ", ")
	return func(rp *httpserver.RequestProcessor) {
		if slices.Contains(methods, rp.Request().Method) {
			rp.Next()
			return
		}

		w := rp.Writer()
		w.Header().Set("Allow", allow)
		handlers.WriteJSON(w, http.StatusMethodNotAllowed, handlers.ErrorResponse{
			Error: "method not allowed",
		})
		rp.Abort()
	}
}
