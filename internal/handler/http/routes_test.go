package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown_path", method: http.MethodGet, path: "/api/unknown"},
		{name: "root", method: http.MethodGet, path: "/"},
		{name: "unsupported_method_on_known_path", method: http.MethodDelete, path: "/api/profile"},
		{name: "get_on_post_route", method: http.MethodGet, path: "/api/generate-video"},
		{name: "post_on_get_route", method: http.MethodPost, path: "/api/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(t, h, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, models.ErrorResponse{
				Error:              "Not found",
				Message:            "The requested resource was not found",
				AvailableEndpoints: app.AvailableEndpoints,
			}, decodeError(t, rr))
		})
	}
}

func TestRoutes_TrailingSlash(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.appInfo.EXPECT().Health(gomock.Any()).Return(models.Health{Status: "healthy"})

	rr := serve(t, h, http.MethodGet, "/api/health/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_Metrics(t *testing.T) {
	h, _ := newTestHandler(t)

	// one request so the HTTP collectors have a sample
	serve(t, h, http.MethodGet, "/api/unknown", "")

	rr := serve(t, h, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "viralcraft_http_requests_total")
	assert.Contains(t, rr.Body.String(), `route="unmatched"`)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(t, h, http.MethodGet, "/api/unknown", "", traceIDHeader, "trace-123")

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}
