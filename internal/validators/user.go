// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/viral-craft/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPrompt   = "prompt"
	FieldVideoID  = "video_id"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// RequestValidator validates inbound API payloads. Checks run in a fixed
// order and the first failure is returned. Usernames and emails are checked
// after trimming surrounding whitespace.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the payload type. When fields are given only those
// checks run, still in their fixed order.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.GenerateVideoRequest:
		return v.validateGenerate(value)
	case *models.GenerateVideoRequest:
		return v.validateGenerate(*value)

	case models.FavoriteRequest:
		return v.validateFavorite(value)
	case *models.FavoriteRequest:
		return v.validateFavorite(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, field := range ordered(fields, FieldUsername, FieldEmail, FieldPassword) {
		switch field {
		case FieldUsername:
			if utf8.RuneCountInString(strings.TrimSpace(req.Username)) < MinUsernameLength {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !strings.Contains(strings.TrimSpace(req.Email), "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	for _, field := range fields {
		if field != FieldUsername && field != FieldPassword {
			return ErrUnknownField
		}
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return ErrCredentialsRequired
	}

	return nil
}

func (v *RequestValidator) validateGenerate(req models.GenerateVideoRequest) error {
	if req.Prompt == "" {
		return ErrPromptRequired
	}

	return nil
}

func (v *RequestValidator) validateFavorite(req models.FavoriteRequest) error {
	if len(req.VideoID) == 0 {
		return ErrVideoIDRequired
	}

	return nil
}

// ordered returns the known fields present in requested, in the order of
// known, followed by any unknown requested fields.
func ordered(requested []string, known ...string) []string {
	out := make([]string, 0, len(requested))
	for _, k := range known {
		for _, r := range requested {
			if r == k {
				out = append(out, k)
				break
			}
		}
	}

	for _, r := range requested {
		isKnown := false
		for _, k := range known {
			if r == k {
				isKnown = true
				break
			}
		}
		if !isKnown {
			out = append(out, r)
		}
	}

	return out
}
