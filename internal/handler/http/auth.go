package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err, app.ErrRegistration)
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, app.ErrRegistration)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgUserRegistered,
		User:    user,
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, r, err, app.ErrLogin)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, app.ErrLogin)
		return
	}

	logger.FromRequest(r).Debug().Str("username", user.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: app.MsgLoginSuccessful,
		User:    user,
		Token:   token.SignedString,
	}, http.StatusOK)
}
