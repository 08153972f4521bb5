// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// ViralCraft API.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/viral-craft/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the ViralCraft
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. Register and Login call it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoggedInUser, error)

	// GenerateVideo requests a video concept for prompt. The stored token, if
	// any, attributes the generation to its user.
	GenerateVideo(ctx context.Context, prompt string) (models.GenerateVideoResponse, error)

	// TrendingElements fetches the current trend snapshot.
	TrendingElements(ctx context.Context) (models.TrendingSnapshot, error)

	// Health fetches the service health report.
	Health(ctx context.Context) (models.Health, error)
}
