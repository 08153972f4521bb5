package service

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")

	// ErrUnknownIdentity is returned when a valid token does not name a
	// stored user, e.g. a token issued while the database was unavailable.
	ErrUnknownIdentity = errors.New("token does not refer to a stored user")

	ErrNoDataProvided      = errors.New("no data provided")
	ErrInvalidProfileField = errors.New("invalid profile field value")
	ErrInvalidVideoID      = errors.New("video id must be a positive integer")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDelayRange     = errors.New("invalid simulated delay range")
	ErrEmptyCatalog          = errors.New("trend catalog is empty")
)
