package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func TestNewAppInfoService(t *testing.T) {
	t.Run("version_required", func(t *testing.T) {
		_, err := NewAppInfoService(config.App{ServiceName: "ViralCraft AI Backend"}, nil, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})

	t.Run("version_reported", func(t *testing.T) {
		svc, err := NewAppInfoService(testAppConfig, nil, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", svc.GetAppVersion(testContext()))
	})
}

func TestAppInfoService_Health(t *testing.T) {
	tests := []struct {
		name     string
		database Pinger
		want     string
	}{
		{name: "no_database", database: nil, want: "not available"},
		{name: "ping_ok", database: pingerFunc(func(context.Context) error { return nil }), want: "connected"},
		{name: "ping_fails", database: pingerFunc(func(context.Context) error { return errors.New("connection refused") }), want: "not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(testAppConfig, tt.database, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, models.Health{
				Status:   "healthy",
				Service:  "ViralCraft AI Backend",
				Database: tt.want,
				Version:  "1.0.0",
			}, svc.Health(testContext()))
		})
	}
}
