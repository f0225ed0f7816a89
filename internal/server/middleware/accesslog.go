package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// AccessLogger records one line per request. Successful requests log at debug
// level, client errors at warn and server errors at error.
type AccessLogger struct {
	logger *slog.Logger
}

// NewAccessLogger creates an access logger writing to logger, or the default
// logger when nil.
func NewAccessLogger(logger *slog.Logger) *AccessLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessLogger{logger: logger.WithGroup("http")}
}

// Middleware returns the middleware function
func (al *AccessLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		start := time.Now()
		rp.Next()

		r := rp.Request()
		rw := rp.Writer()

		status := rw.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelDebug
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", clientIP(r)),
			slog.Int("body_size", rw.Size()),
		}
		if id := rw.Header().Get(HeaderRequestID); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		al.logger.LogAttrs(r.Context(), level, "HTTP request", attrs...)
	}
}

// clientIP prefers proxy headers over the socket address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
