// Package utils provides general-purpose helpers used across the
// application: JSON response writing, JWT issuance and validation, password
// hashing, and an injectable source of randomness.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/viral-craft/models"
)

// fallbackErrorBody is written when a response value cannot be encoded.
const fallbackErrorBody = `{"error":"Internal server error","message":"Something went wrong on the server"}`

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error and a
// generic JSON error body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Health{Status: "healthy"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackErrorBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] with the given status code.
// An empty message is omitted from the body.
func WriteError(w http.ResponseWriter, statusCode int, errText, message string) {
	WriteJSON(w, models.ErrorResponse{Error: errText, Message: message}, statusCode)
}
