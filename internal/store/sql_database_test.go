package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		dsn     string
		want    Dialect
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost/db", want: DialectPostgres},
		{dsn: "postgresql://localhost/db", want: DialectPostgres},
		{dsn: "viralcraft.db", want: DialectSQLite},
		{dsn: "file:test.db?cache=shared", want: DialectSQLite},
		{dsn: ":memory:", want: DialectSQLite},
		{dsn: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := DetectDialect(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.db?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("app.db"))
	assert.Equal(t, "file:app.db?mode=rwc&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:app.db?mode=rwc"))
	assert.Equal(t, "app.db?_foreign_keys=off&_busy_timeout=5000", sqliteDSN("app.db?_foreign_keys=off"))
	assert.Equal(t, "app.db?_busy_timeout=1&_foreign_keys=on", sqliteDSN("app.db?_busy_timeout=1&_foreign_keys=on"))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.Equal(t, ForeignKeyViolation, c.Classify(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.Equal(t, Transient, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Unclassified, c.Classify(&pgconn.PgError{Code: pgerrcode.SyntaxError}))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	assert.Equal(t, UniqueViolation, c.Classify(unique))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", unique)))
	assert.Equal(t, ForeignKeyViolation, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.Equal(t, Transient, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}
