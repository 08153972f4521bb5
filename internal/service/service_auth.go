package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/viral-craft/internal/config"
	"github.com/MKhiriev/viral-craft/internal/logger"
	"github.com/MKhiriev/viral-craft/internal/store"
	"github.com/MKhiriev/viral-craft/internal/utils"
	"github.com/MKhiriev/viral-craft/internal/validators"
	"github.com/MKhiriev/viral-craft/models"
)

// authService is the concrete implementation of AuthService.
//
// When userRepository is nil the service runs in the lightweight mode:
// registration persists nothing, login accepts any password for a username
// of at least validators.MinUsernameLength characters, and tokens carry a
// synthesized "user_<username>_<unix>" id. This mode performs no credential
// verification at all.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users. Nil selects the lightweight mode.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg. A nil userRepository selects the lightweight mode.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser validates req and creates the account.
//
// Returns the public view of the user and a fresh token, or:
//   - a validators error naming the first failing field;
//   - store.ErrUserAlreadyExists if the username or email is taken;
//   - a wrapped error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.RegisteredUser, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("registration data rejected")
		return models.RegisteredUser{}, models.Token{}, fmt.Errorf("invalid registration data: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	now := a.now().UTC()

	identity := models.Identity{Username: username}
	createdAt := now

	if a.userRepository == nil {
		identity.UserID = syntheticUserID(username, now)
	} else {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.RegisteredUser{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
		}

		user, err := a.userRepository.CreateUser(ctx, models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    now,
			IsActive:     true,
		})
		if err != nil {
			log.Err(err).Str("username", username).Msg("user creation ended with error")
			return models.RegisteredUser{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
		}

		identity.UserID = strconv.FormatInt(user.UserID, 10)
		createdAt = user.CreatedAt
	}

	token, err := a.createToken(identity, now)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return models.RegisteredUser{}, models.Token{}, err
	}

	log.Info().Str("user_id", identity.UserID).Msg("user registered")

	return models.RegisteredUser{
		Username:  username,
		Email:     email,
		CreatedAt: formatTimestamp(createdAt),
	}, token, nil
}

// Login authenticates the caller.
//
// Returns validators.ErrCredentialsRequired for an empty username or
// password and ErrInvalidCredentials when the credentials are rejected.
// A failure to record the login time is logged and does not fail the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoggedInUser, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.LoggedInUser{}, models.Token{}, fmt.Errorf("invalid login data: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	now := a.now().UTC()

	var identity models.Identity
	if a.userRepository == nil {
		if utf8.RuneCountInString(username) < validators.MinUsernameLength {
			return models.LoggedInUser{}, models.Token{}, ErrInvalidCredentials
		}
		identity = models.Identity{UserID: syntheticUserID(username, now), Username: username}
	} else {
		user, err := a.verifyCredentials(ctx, username, req.Password)
		if err != nil {
			return models.LoggedInUser{}, models.Token{}, err
		}

		if err = a.userRepository.UpdateLastLogin(ctx, user.UserID, now); err != nil {
			log.Err(err).Int64("id", user.UserID).Msg("failed to record last login")
		}

		identity = models.Identity{UserID: strconv.FormatInt(user.UserID, 10), Username: user.Username}
	}

	token, err := a.createToken(identity, now)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return models.LoggedInUser{}, models.Token{}, err
	}

	log.Debug().Str("user_id", identity.UserID).Msg("user successfully logged in")

	return models.LoggedInUser{
		Username:  identity.Username,
		LastLogin: formatTimestamp(now),
	}, token, nil
}

func (a *authService) verifyCredentials(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("no user was found")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("id", user.UserID).Msg("wrong password")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", user.UserID).Msg("stored password hash is unusable")
		return models.User{}, err
	}

	if !user.IsActive {
		log.Debug().Int64("id", user.UserID).Msg("login to deactivated account")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ParseToken validates a raw JWT string and returns the decoded token.
// Failures are reported as ErrTokenIsExpired or ErrTokenIsInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

func (a *authService) createToken(identity models.Identity, now time.Time) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey, now)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func syntheticUserID(username string, now time.Time) string {
	return fmt.Sprintf("user_%s_%d", username, now.Unix())
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
