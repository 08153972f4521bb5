// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/app"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/go-chi/chi/v5"
)

// notFound writes the 404 body listing the public endpoints.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:              app.ErrNotFound,
		Message:            app.MsgNotFound,
		AvailableEndpoints: app.AvailableEndpoints,
	}, http.StatusNotFound)
}

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// A request whose path is registered but whose method is not gets the same
// 404 body as an unknown path, so the API never answers 405. If the method
// turns out to be registered for the exact route pattern, the request is
// served by router as usual.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		notFound(w, r)
	}
}
