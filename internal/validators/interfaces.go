// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the services.
//
// Each failure is one of the sentinel errors in errors.go, so the HTTP error
// mapper can turn it into a 400 with a fixed text.
package validators

import "context"

// Validator validates a request payload. When field names are given only
// those fields are checked, in the order the payload type defines them.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
