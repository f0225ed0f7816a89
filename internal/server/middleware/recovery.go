package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/atlanticdynamic/app1/internal/server/handlers"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Recovery turns a handler panic into a JSON 500. When showDetails is set
// (debug mode) the body carries the panic value and the stack trace.
func Recovery(logger *slog.Logger, showDetails bool) httpserver.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(rp *httpserver.RequestProcessor) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			stack := debug.Stack()
			r := rp.Request()
			logger.Error("Panic while handling request",
				"method", r.Method,
				"path", r.URL.Path,
				"panic", fmt.Sprint(rec),
			)
			logger.Debug("Panic stack", "stack", string(stack))

			rp.Abort()
			w := rp.Writer()
			if w.Written() {
				return
			}

			body := handlers.ErrorResponse{Error: "internal server error"}
			if showDetails {
				body.Detail = fmt.Sprint(rec)
				body.Stack = string(stack)
			}
			handlers.WriteJSON(w, http.StatusInternalServerError, body)
		}()

		rp.Next()
	}
}
