package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gurusoftware/backend/internal/logging"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID reuses an incoming X-Request-Id or generates one, echoes it on the
// response and stores a logger tagged with it in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		logger := logging.FromContext(r.Context()).With("request_id", id)
		next.ServeHTTP(w, r.WithContext(logging.WithLogger(r.Context(), logger)))
	})
}
