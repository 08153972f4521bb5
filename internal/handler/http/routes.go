package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withRecover)
	router.Use(withGZip)
	router.Use(h.withTimeout)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/generate-video", h.optionalAuth(h.generateVideo))
		r.Get("/api/trending-elements", h.getTrendingElements)
		r.Get("/api/analytics", h.getAnalytics)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/profile", h.auth(h.getProfile))
		r.Put("/api/profile", h.auth(h.updateProfile))
		r.Get("/api/history", h.auth(h.getHistory))
		r.Post("/api/favorites", h.auth(h.addFavorite))
		r.Get("/api/subscription", h.auth(h.getSubscription))
	})

	router.Handle("/metrics", promhttp.Handler())

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
