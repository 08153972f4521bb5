package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/service"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
)

// apiError is the public rendering of a known error.
type apiError struct {
	status  int
	text    string
	message string
}

// validationError renders a validators sentinel, whose text is client-safe.
func validationError(err error) apiError {
	return apiError{status: http.StatusBadRequest, text: err.Error()}
}

// errorStatusTable is matched in order with errors.Is, so an error wrapping
// several sentinels always renders as the first listed one.
var errorStatusTable = []struct {
	target   error
	rendered apiError
}{
	{context.DeadlineExceeded, apiError{status: http.StatusServiceUnavailable, text: app.ErrTimeout, message: app.MsgTimeout}},

	{validators.ErrInvalidUsername, validationError(validators.ErrInvalidUsername)},
	{validators.ErrInvalidEmail, validationError(validators.ErrInvalidEmail)},
	{validators.ErrInvalidPassword, validationError(validators.ErrInvalidPassword)},
	{validators.ErrCredentialsRequired, validationError(validators.ErrCredentialsRequired)},
	{validators.ErrPromptRequired, validationError(validators.ErrPromptRequired)},
	{validators.ErrVideoIDRequired, validationError(validators.ErrVideoIDRequired)},

	{ErrInvalidJSON, apiError{status: http.StatusBadRequest, text: app.ErrInvalidJSON, message: app.MsgMalformedBody}},
	{service.ErrNoDataProvided, apiError{status: http.StatusBadRequest, text: app.ErrNoDataProvided}},
	{service.ErrInvalidVideoID, apiError{status: http.StatusBadRequest, text: app.ErrInvalidVideoID, message: app.MsgInvalidVideoID}},
	{service.ErrInvalidProfileField, apiError{status: http.StatusBadRequest, text: app.ErrInvalidField, message: app.MsgInvalidFieldFormat}},

	{ErrEmptyAuthorizationHeader, apiError{status: http.StatusUnauthorized, text: app.ErrTokenMissing}},
	{ErrEmptyToken, apiError{status: http.StatusUnauthorized, text: app.ErrTokenMissing}},
	{ErrInvalidAuthorizationHeader, apiError{status: http.StatusUnauthorized, text: app.ErrTokenInvalid}},
	{service.ErrTokenIsExpired, apiError{status: http.StatusUnauthorized, text: app.ErrTokenExpired}},
	{service.ErrTokenIsInvalid, apiError{status: http.StatusUnauthorized, text: app.ErrTokenInvalid}},
	{service.ErrUnknownIdentity, apiError{status: http.StatusUnauthorized, text: app.ErrTokenInvalid, message: app.MsgUnknownIdentity}},
	{service.ErrInvalidCredentials, apiError{status: http.StatusUnauthorized, text: app.ErrInvalidCreds}},

	{store.ErrUserAlreadyExists, apiError{status: http.StatusConflict, text: app.ErrUserExists, message: app.MsgUserExists}},
	{store.ErrUserNotFound, apiError{status: http.StatusNotFound, text: app.ErrUserNotFound}},
	{store.ErrVideoNotFound, apiError{status: http.StatusNotFound, text: app.ErrVideoNotFound, message: app.MsgVideoNotFound}},
}

func publicError(err error) (apiError, bool) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.rendered, true
		}
	}
	return apiError{}, false
}

func statusFromError(err error) int {
	if rendered, ok := publicError(err); ok {
		return rendered.status
	}
	return http.StatusInternalServerError
}

// writeError renders err as a JSON error body. Errors missing from
// errorStatusTable become a 500 with failure as the error text; their own text
// is logged and never sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	log := logger.FromRequest(r)

	rendered, ok := publicError(err)
	if !ok {
		log.Err(err).Msg(failure)
		utils.WriteError(w, http.StatusInternalServerError, failure, app.MsgInternalServer)
		return
	}

	log.Debug().Err(err).Int("status", rendered.status).Msg("request rejected")
	utils.WriteError(w, rendered.status, rendered.text, rendered.message)
}
