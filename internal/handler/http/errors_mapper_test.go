package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: validators.ErrInvalidEmail, want: http.StatusBadRequest},
		{name: "wrapped_validation", err: fmt.Errorf("register: %w", validators.ErrInvalidPassword), want: http.StatusBadRequest},
		{name: "invalid_json", err: fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), want: http.StatusBadRequest},
		{name: "no_data", err: service.ErrNoDataProvided, want: http.StatusBadRequest},
		{name: "missing_header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "expired", err: service.ErrTokenIsExpired, want: http.StatusUnauthorized},
		{name: "credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "conflict", err: errors.Join(store.ErrUserAlreadyExists, errors.New("23505")), want: http.StatusConflict},
		{name: "video_not_found", err: store.ErrVideoNotFound, want: http.StatusNotFound},
		{name: "deadline", err: fmt.Errorf("wait: %w", context.DeadlineExceeded), want: http.StatusServiceUnavailable},
		{name: "store_failure", err: store.ErrExecutingQuery, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestPublicError_SeveralSentinelsPickTheFirstListed(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
	}{
		{name: "timeout_over_validation", err: errors.Join(validators.ErrPromptRequired, context.DeadlineExceeded), wantText: "Request timed out"},
		{name: "validation_over_store", err: errors.Join(store.ErrUserNotFound, validators.ErrInvalidEmail), wantText: validators.ErrInvalidEmail.Error()},
		{name: "auth_over_not_found", err: errors.Join(store.ErrUserNotFound, service.ErrUnknownIdentity), wantText: "Token is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// repeated lookups must agree
			for range 50 {
				rendered, ok := publicError(tt.err)
				require.True(t, ok)
				require.Equal(t, tt.wantText, rendered.text)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	t.Run("known_error_uses_public_text", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), store.ErrVideoNotFound, "Failed to add favorite")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, models.ErrorResponse{
			Error:   "Video not found",
			Message: "No video with this ID in your history",
		}, decodeError(t, rr))
	})

	t.Run("unknown_error_is_hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("dial tcp 10.0.0.1:5432"), "Failed to fetch profile")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, models.ErrorResponse{
			Error:   "Failed to fetch profile",
			Message: "Something went wrong on the server",
		}, decodeError(t, rr))
		assert.NotContains(t, rr.Body.String(), "10.0.0.1")
	})
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    models.LoginRequest
	}{
		{name: "object", body: `{"username":"alice","password":"x"}`, want: models.LoginRequest{Username: "alice", Password: "x"}},
		{name: "unknown_fields_ignored", body: `{"username":"alice","extra":1}`, want: models.LoginRequest{Username: "alice"}},
		{name: "whitespace", body: " \n\t", wantErr: service.ErrNoDataProvided},
		{name: "null", body: "null", wantErr: service.ErrNoDataProvided},
		{name: "empty_object", body: "{ }", wantErr: service.ErrNoDataProvided},
		{name: "string", body: `"alice"`, wantErr: ErrInvalidJSON},
		{name: "truncated", body: `{"username":`, wantErr: ErrInvalidJSON},
		{name: "wrong_field_type", body: `{"password":123}`, wantErr: ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))

			var got models.LoginRequest
			err := decodeJSONBody(req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSONBody_NilBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Body = nil

	var got models.LoginRequest
	assert.ErrorIs(t, decodeJSONBody(req, &got), service.ErrNoDataProvided)
}
