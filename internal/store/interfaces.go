// Package store persists users, their video history and trending elements
// in PostgreSQL or SQLite through database/sql.
//
// The backend is selected from the DSN; SQL is built with squirrel using
// the placeholder format of the selected dialect. List columns are JSON
// text handled by [models.StringList].
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/viral-craft/models"
)

// UserRepository stores accounts and their cumulative statistics.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A duplicate username or email yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	// IncrementStats adds one video and score to the totals in a single
	// statement.
	IncrementStats(ctx context.Context, id int64, score float64) error
	UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error
	// DeleteUser removes the user and, by cascade, its history.
	DeleteUser(ctx context.Context, id int64) error
}

// VideoHistoryRepository stores generation records owned by users.
type VideoHistoryRepository interface {
	CreateVideo(ctx context.Context, video models.VideoHistory) (models.VideoHistory, error)
	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.VideoHistory, error)
	// SetFavorite flags a record of userID. ErrVideoNotFound is returned
	// when videoID does not belong to userID.
	SetFavorite(ctx context.Context, userID, videoID int64, favorite bool) error
}

// TrendingElementRepository stores catalog rows with usage accounting.
type TrendingElementRepository interface {
	// SeedTrends inserts the items whose names are not stored yet.
	SeedTrends(ctx context.Context, items []models.TrendItem) error
	// ListTrends returns up to limit active elements by usage count
	// descending. A zero limit returns all of them.
	ListTrends(ctx context.Context, limit uint64) ([]models.TrendingElement, error)
	SetPopularity(ctx context.Context, name string, popularity float64) error
	// IncrementUsage bumps the usage counter of every named element.
	IncrementUsage(ctx context.Context, names []string) error
}

// ErrorClassificator maps driver errors to dialect-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
