package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/models"
)

// userRepository is the database/sql implementation of [UserRepository]
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the canonical stored row
// (id, defaults) via a RETURNING clause.
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists];
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.SubscriptionPlan == "" {
		user.SubscriptionPlan = models.SubscriptionFree
	}
	if user.FavoriteCategories == nil {
		user.FavoriteCategories = models.StringList{}
	}

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder(), where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *userRepository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, "*userRepository.SetPassword", id, map[string]any{"password_hash": passwordHash})
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, "*userRepository.UpdateLastLogin", id, map[string]any{"last_login": at})
}

// IncrementStats adds one generated video and score to the stored totals.
// Concurrent calls for the same user are serialised by the database.
func (r *userRepository) IncrementStats(ctx context.Context, id int64, score float64) error {
	query, args, err := buildIncrementStatsQuery(r.db.builder(), id, score)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.IncrementStats", query, args)
}

// UpdateProfile writes the non-nil fields of update. An empty update only
// checks that the user exists.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update models.ProfileUpdate) error {
	if update.IsEmpty() {
		_, err := r.FindUserByID(ctx, id)
		return err
	}

	query, args, err := buildUpdateProfileQuery(r.db.builder(), id, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.exec(ctx, "*userRepository.UpdateProfile", query, args)
	if r.db.isUniqueViolation(err) {
		return ErrUserAlreadyExists
	}

	return err
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := buildDeleteUserQuery(r.db.builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*userRepository.DeleteUser", query, args)
}

func (r *userRepository) update(ctx context.Context, funcName string, id int64, set map[string]any) error {
	query, args, err := buildUpdateUserQuery(r.db.builder(), id, set)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, funcName, query, args)
}

// exec runs a single-row statement and maps zero affected rows to
// [ErrUserNotFound].
func (r *userRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
