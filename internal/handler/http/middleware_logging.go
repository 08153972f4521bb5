package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no registered pattern.
const unmatchedRoute = "unmatched"

// withLogging writes one access-log entry per request and records the
// request in the HTTP metrics under its route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		route := routePattern(r)
		metrics.RecordHTTPRequest(method, route, status, duration.Seconds())

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the chi pattern that served r. It is only complete
// once the router has finished routing.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}
