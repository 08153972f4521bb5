// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/mock"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "viral-craft",
	TokenDuration: 24 * time.Hour,
	Version:       "1.0.0",
	ServiceName:   "ViralCraft AI Backend",
}

// newTestAuthSvc builds an authService issuing tokens at issued. A nil
// users selects the lightweight mode.
func newTestAuthSvc(t *testing.T, users store.UserRepository, issued time.Time) *authService {
	t.Helper()
	svc := NewAuthService(users, testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return issued }
	return svc
}

func issuedNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Lightweight(t *testing.T) {
	issued := issuedNow()
	svc := newTestAuthSvc(t, nil, issued)

	user, token, err := svc.RegisterUser(testContext(), models.RegisterRequest{
		Username: "  alice ",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, issued.Format(time.RFC3339), user.CreatedAt)

	assert.Equal(t, fmt.Sprintf("user_alice_%d", issued.Unix()), token.Claims.UserID)
	assert.Equal(t, "alice", token.Claims.Username)
	assert.Equal(t, issued.Add(24*time.Hour), token.Claims.ExpiresAt.Time)

	parsed, err := svc.ParseToken(testContext(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, token.Claims.UserID, parsed.Identity().UserID)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "short_username",
			req:     models.RegisterRequest{Username: "ab", Email: "a@b.c", Password: "secret1"},
			wantErr: validators.ErrInvalidUsername,
		},
		{
			name:    "short_username_after_trim",
			req:     models.RegisterRequest{Username: "  ab  ", Email: "a@b.c", Password: "secret1"},
			wantErr: validators.ErrInvalidUsername,
		},
		{
			name:    "email_without_at",
			req:     models.RegisterRequest{Username: "alice", Email: "alice.example.com", Password: "secret1"},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "short_password",
			req:     models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "12345"},
			wantErr: validators.ErrInvalidPassword,
		},
		{
			name:    "first_failure_wins",
			req:     models.RegisterRequest{Username: "a", Email: "bad", Password: "1"},
			wantErr: validators.ErrInvalidUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthSvc(t, nil, issuedNow())

			_, _, err := svc.RegisterUser(testContext(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_Persisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	issued := issuedNow()
	svc := newTestAuthSvc(t, users, issued)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.True(t, u.IsActive)
			// the plain password never reaches the store
			assert.NotEqual(t, "secret1", u.PasswordHash)
			assert.NoError(t, utils.CheckPassword(u.PasswordHash, "secret1"))

			u.UserID = 42
			return u, nil
		},
	)

	user, token, err := svc.RegisterUser(testContext(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "42", token.Claims.UserID)
	assert.Equal(t, issued.Format(time.RFC3339), user.CreatedAt)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	svc := newTestAuthSvc(t, users, issuedNow())

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, _, err := svc.RegisterUser(testContext(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Lightweight(t *testing.T) {
	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "any_password_accepted", req: models.LoginRequest{Username: "alice", Password: "x"}},
		{name: "short_username", req: models.LoginRequest{Username: "ab", Password: "whatever"}, wantErr: ErrInvalidCredentials},
		{name: "missing_password", req: models.LoginRequest{Username: "alice"}, wantErr: validators.ErrCredentialsRequired},
		{name: "blank_username", req: models.LoginRequest{Username: "  ", Password: "x"}, wantErr: validators.ErrCredentialsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued := issuedNow()
			svc := newTestAuthSvc(t, nil, issued)

			user, token, err := svc.Login(testContext(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, issued.Format(time.RFC3339), user.LastLogin)
			assert.Equal(t, fmt.Sprintf("user_alice_%d", issued.Unix()), token.Claims.UserID)
		})
	}
}

func TestAuthService_Login_Persisted(t *testing.T) {
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	stored := models.User{UserID: 7, Username: "alice", PasswordHash: hash, IsActive: true}

	t.Run("success_records_last_login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		issued := issuedNow()
		svc := newTestAuthSvc(t, users, issued)

		gomock.InOrder(
			users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil),
			users.EXPECT().UpdateLastLogin(gomock.Any(), int64(7), issued).Return(nil),
		)

		user, token, err := svc.Login(testContext(), models.LoginRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "7", token.Claims.UserID)
	})

	t.Run("last_login_failure_is_not_fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := newTestAuthSvc(t, users, issuedNow())

		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
		users.EXPECT().UpdateLastLogin(gomock.Any(), int64(7), gomock.Any()).Return(errors.New("db is locked"))

		_, _, err := svc.Login(testContext(), models.LoginRequest{Username: "alice", Password: "secret1"})
		assert.NoError(t, err)
	})

	t.Run("wrong_password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := newTestAuthSvc(t, users, issuedNow())

		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)

		_, _, err := svc.Login(testContext(), models.LoginRequest{Username: "alice", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown_user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := newTestAuthSvc(t, users, issuedNow())

		users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)

		_, _, err := svc.Login(testContext(), models.LoginRequest{Username: "bob", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deactivated_user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := newTestAuthSvc(t, users, issuedNow())

		inactive := stored
		inactive.IsActive = false
		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(inactive, nil)

		_, _, err := svc.Login(testContext(), models.LoginRequest{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("store_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock.NewMockUserRepository(ctrl)
		svc := newTestAuthSvc(t, users, issuedNow())

		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrScanningRow)

		_, _, err := svc.Login(testContext(), models.LoginRequest{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrScanningRow)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	svc := newTestAuthSvc(t, nil, issuedNow())
	identity := models.Identity{UserID: "user_alice_1", Username: "alice"}

	t.Run("different_secret", func(t *testing.T) {
		token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, identity, time.Hour, "another-key", time.Now())
		require.NoError(t, err)

		_, err = svc.ParseToken(testContext(), token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, identity, 24*time.Hour, testAppConfig.TokenSignKey, time.Now().Add(-25*time.Hour))
		require.NoError(t, err)

		_, err = svc.ParseToken(testContext(), token.SignedString)
		assert.ErrorIs(t, err, ErrTokenIsExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken(testContext(), "not.a.token")
		assert.ErrorIs(t, err, ErrTokenIsInvalid)
	})
}
