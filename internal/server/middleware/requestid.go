package middleware

import (
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	HeaderRequestID = "X-Request-Id"

	maxRequestIDLength = 128
)

// RequestID echoes a client supplied X-Request-Id or generates one. The ID is
// also written back onto the request so later middleware can read it.
func RequestID() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()

		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = newRequestID()
			r.Header.Set(HeaderRequestID, id)
		}
		rp.Writer().Header().Set(HeaderRequestID, id)

		rp.Next()
	}
}

func newRequestID() string {
	return uuid.Must(uuid.NewV6()).String()
}
