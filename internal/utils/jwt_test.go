package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/viral-craft/models"
	"github.com/golang-jwt/jwt/v5"
)

var testIdentity = models.Identity{UserID: "123", Username: "alice"}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := 24 * time.Hour
	key := "secret-key"
	now := time.Now()

	token, err := GenerateJWTToken(issuer, testIdentity, duration, key, now)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.UserID != "123" || token.Claims.Username != "alice" {
		t.Errorf("unexpected identity claims: %+v", token.Claims)
	}
	if got := token.Claims.ExpiresAt.Time.Sub(now); got < duration-time.Second || got > duration+time.Second {
		t.Errorf("expected expiry about %s after issuance, got %s", duration, got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity, time.Hour, "key"},
		{"zero duration", "iss", testIdentity, 0, "key"},
		{"empty key", "iss", testIdentity, time.Hour, ""},
		{"empty user id", "iss", models.Identity{Username: "alice"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key, time.Now())
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Identity() != testIdentity {
		t.Errorf("expected identity %+v, got %+v", testIdentity, parsed.Identity())
	}
}

func TestValidateAndParseJWTToken_WrongSecret(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())

	_, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if errors.Is(err, ErrTokenExpired) {
		t.Error("wrong secret must not be reported as expired")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, 24*time.Hour, "key", time.Now().Add(-25*time.Hour))

	_, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())

	_, err := ValidateAndParseJWTToken(token.SignedString, "key", "other-iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.TokenClaims{
		UserID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingUserID(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	_, err := ValidateAndParseJWTToken(signed, "key", "iss")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
