package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
)

const bearerScheme = "Bearer"

// authedHandlerFunc is a handler that runs only for an authenticated caller.
type authedHandlerFunc func(w http.ResponseWriter, r *http.Request, identity models.Identity)

// optionalAuthHandlerFunc receives a nil identity for anonymous callers.
type optionalAuthHandlerFunc func(w http.ResponseWriter, r *http.Request, identity *models.Identity)

// auth enforces bearer-token authentication and passes the resolved identity
// to next.
//
// The request is rejected with 401 and one of the bodies
//   - "Token is missing" when the header or the token value is absent;
//   - "Token has expired" when the token is past its expiry;
//   - "Token is invalid" for any other parse or signature failure.
func (h *Handler) auth(next authedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err != nil {
			writeError(w, r, err, app.ErrTokenInvalid)
			return
		}

		next(w, r, identity)
	}
}

// optionalAuth resolves the caller when a token is present. A missing or
// unusable token lets the request through anonymously.
func (h *Handler) optionalAuth(next optionalAuthHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next(w, r, nil)
			return
		}

		identity, err := h.identityFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring unusable token on public route")
			next(w, r, nil)
			return
		}

		next(w, r, &identity)
	}
}

func (h *Handler) identityFromRequest(r *http.Request) (models.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Identity{}, ErrEmptyAuthorizationHeader
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return models.Identity{}, err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	return token.Identity(), nil
}

// getTokenFromAuthHeader extracts the token from a "Bearer <token>" header
// value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, _ := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
