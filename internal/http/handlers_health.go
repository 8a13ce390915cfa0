package httpx

import (
	"context"
	"io"
	"maps"
	"net/http"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	healthResponse     = `{"status":"ok"}`
	healthCheckTimeout = 2 * time.Second
)

// HealthCheck probes one dependency; a nil error means healthy.
type HealthCheck func(ctx context.Context) error

// healthHandler returns 200 when every check passes and 503 with the failing
// checks otherwise. With no checks it is a plain liveness probe.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodHead {
				return
			}
			if _, err := io.WriteString(w, healthResponse); err != nil {
				// Nothing more to do if the client connection is gone.
				return
			}
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		failures := runHealthChecks(ctx, checks)
		status, code := "ok", http.StatusOK
		if len(failures) > 0 {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(code)
			return
		}
		body := map[string]any{"status": status}
		if len(failures) > 0 {
			body["failures"] = failures
		}
		WriteJSON(w, code, body)
	}
}

func runHealthChecks(ctx context.Context, checks map[string]HealthCheck) map[string]string {
	var (
		mu       sync.Mutex
		g        errgroup.Group
		failures = map[string]string{}
	)
	for _, name := range slices.Sorted(maps.Keys(checks)) {
		check := checks[name]
		g.Go(func() error {
			if err := check(ctx); err != nil {
				mu.Lock()
				failures[name] = err.Error()
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return failures
}
