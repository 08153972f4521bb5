package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/utils"
)

// withRecover turns a panicking handler into a generic JSON 500.
// http.ErrAbortHandler is re-panicked so the server aborts the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			utils.WriteError(w, http.StatusInternalServerError, app.ErrInternalServer, app.MsgInternalServer)
		}()

		next.ServeHTTP(w, r)
	})
}
