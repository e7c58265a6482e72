package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

var shuttingDownBody = []byte(`{"error":"Service is shutting down"}`)

// Middleware rejects new requests with 503 once the process is draining and the
// in-flight context has been cancelled.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write(shuttingDownBody)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
