package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const checkTimeout = 2 * time.Second

// Check reports whether a dependency (database, cache) is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	isShuttingDown *atomic.Bool
	checks         []Check
}

func New(isShuttingDown *atomic.Bool, checks ...Check) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		checks:         checks,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		for _, check := range h.checks {
			if err := check(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
