package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the signed payload of a bearer token.
//
// UserID is kept as a string so that both persisted numeric ids and the
// synthesized ids of the database-less mode fit the same claim.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded payload.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Identity returns the caller identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.Claims.UserID, Username: t.Claims.Username}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
