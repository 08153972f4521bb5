package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
)

// generateVideo is public; a valid token attributes the result to its user.
func (h *Handler) generateVideo(w http.ResponseWriter, r *http.Request, identity *models.Identity) {
	var req models.GenerateVideoRequest
	if err := decodeJSONBody(r, &req); err != nil {
		if errors.Is(err, service.ErrNoDataProvided) {
			err = validators.ErrPromptRequired
		}
		writeError(w, r, err, app.ErrGenerateVideo)
		return
	}

	response, err := h.services.VideoService.GenerateVideo(r.Context(), req, identity)
	if errors.Is(err, context.Canceled) {
		// the client went away, there is no one to answer
		logger.FromRequest(r).Debug().Err(err).Msg("generation cancelled by client")
		return
	}
	if err != nil {
		writeError(w, r, err, app.ErrGenerateVideo)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getTrendingElements(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.TrendService.GetTrendingElements(r.Context())
	if err != nil {
		writeError(w, r, err, app.ErrFetchTrending)
		return
	}

	utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.TrendService.GetAnalytics(r.Context())
	if err != nil {
		writeError(w, r, err, app.ErrFetchAnalytics)
		return
	}

	utils.WriteJSON(w, analytics, http.StatusOK)
}
