package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/viral-craft/models"
)

// AuthService issues and validates bearer tokens.
//
// With a user store it registers and verifies real accounts; without one it
// runs in the lightweight mode, where any well-formed credentials succeed.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoggedInUser, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService serves the account endpoints of an authenticated caller.
type ProfileService interface {
	GetProfile(ctx context.Context, identity models.Identity) (models.Profile, error)
	// UpdateProfile applies the allow-listed keys of fields and returns the
	// names of the honoured ones in allow-list order.
	UpdateProfile(ctx context.Context, identity models.Identity, fields map[string]json.RawMessage) ([]string, error)
	GetHistory(ctx context.Context, identity models.Identity) ([]models.VideoHistory, error)
	AddFavorite(ctx context.Context, identity models.Identity, videoID json.RawMessage) error
	GetSubscription(ctx context.Context, identity models.Identity) (models.Subscription, error)
}

// VideoService produces generated video concepts.
type VideoService interface {
	// GenerateVideo builds a concept for req. A non-nil identity attributes
	// the result to that user when a store is available.
	GenerateVideo(ctx context.Context, req models.GenerateVideoRequest, identity *models.Identity) (models.GenerateVideoResponse, error)
}

// TrendService serves trend snapshots and static insight tables.
type TrendService interface {
	GetTrendingElements(ctx context.Context) (models.TrendingSnapshot, error)
	GetAnalytics(ctx context.Context) (models.Analytics, error)
}

// AppInfoService reports the service identity and health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.Health
}
