// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	profile, err := h.services.ProfileService.GetProfile(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.ErrFetchProfile)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, Profile: profile}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	var fields map[string]json.RawMessage
	if err := decodeJSONBody(r, &fields); err != nil {
		writeError(w, r, err, app.ErrUpdateProfile)
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(r.Context(), identity, fields)
	if err != nil {
		writeError(w, r, err, app.ErrUpdateProfile)
		return
	}

	utils.WriteJSON(w, models.UpdateProfileResponse{
		Success:       true,
		Message:       app.MsgProfileUpdated,
		UpdatedFields: updated,
	}, http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	history, err := h.services.ProfileService.GetHistory(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.ErrFetchHistory)
		return
	}
	if history == nil {
		history = []models.VideoHistory{}
	}

	utils.WriteJSON(w, models.HistoryResponse{
		Success: true,
		History: history,
		Total:   len(history),
	}, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	ctx := r.Context()

	var req models.FavoriteRequest
	err := decodeJSONBody(r, &req)
	if errors.Is(err, service.ErrNoDataProvided) {
		err = validators.ErrVideoIDRequired
	}
	if err == nil {
		err = h.validator.Validate(ctx, req)
	}
	if err != nil {
		writeError(w, r, err, app.ErrAddFavorite)
		return
	}

	if err = h.services.ProfileService.AddFavorite(ctx, identity, req.VideoID); err != nil {
		writeError(w, r, err, app.ErrAddFavorite)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgFavoriteAdded}, http.StatusOK)
}

func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request, identity models.Identity) {
	subscription, err := h.services.ProfileService.GetSubscription(r.Context(), identity)
	if err != nil {
		writeError(w, r, err, app.ErrFetchSubscr)
		return
	}

	utils.WriteJSON(w, models.SubscriptionResponse{Success: true, Subscription: subscription}, http.StatusOK)
}
