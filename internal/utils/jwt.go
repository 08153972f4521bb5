package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be issued
	// because the issuer, duration, sign key or user id is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrTokenExpired is returned when a token has a valid signature but
	// its "exp" claim is in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned for every other validation failure:
	// bad signature, malformed structure, wrong issuer or missing claims.
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given identity.
//
// The token includes the following claims:
//   - user_id  : identity.UserID
//   - username : identity.Username
//   - iss      : issuer
//   - sub      : identity.UserID
//   - iat      : now
//   - exp      : now plus tokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("viral-craft", identity, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || identity.UserID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := models.TokenClaims{
		UserID:   identity.UserID,
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - user_id claim presence
//
// The returned error wraps [ErrTokenExpired] when only the expiry check
// failed and [ErrTokenInvalid] otherwise.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.UserID == "" {
		return models.Token{}, fmt.Errorf("%w: empty user_id claim", ErrTokenInvalid)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
