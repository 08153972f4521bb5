package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a DB of the given dialect.
func newDBFromSQL(db *sql.DB, dialect Dialect) *DB {
	classifier := ErrorClassificator(NewSQLiteErrorClassifier())
	if dialect == DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 db,
		dialect:            dialect,
		errorClassificator: classifier,
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}
