// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/viral-craft/internal/service"
)

// maxBodySize caps every decoded request body.
const maxBodySize = 1 << 20

// decodeJSONBody decodes the body of r into dst. An absent, null or empty
// object body yields service.ErrNoDataProvided.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return service.ErrNoDataProvided
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return service.ErrNoDataProvided
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(fields) == 0 {
		return service.ErrNoDataProvided
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}
