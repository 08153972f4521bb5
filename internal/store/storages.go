package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
)

// Storages groups the repositories sharing one database connection.
type Storages struct {
	Users  UserRepository
	Videos VideoHistoryRepository
	Trends TrendingElementRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies the
// schema migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:  NewUserRepository(db, log),
		Videos: NewVideoHistoryRepository(db, log),
		Trends: NewTrendingElementRepository(db, log),
		db:     db,
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
