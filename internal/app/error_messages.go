// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ViralCraft handlers, services and middleware.
//
// Err* constants are the "error" field of JSON error bodies, Msg* constants
// are human-readable "message" texts. Keeping them in one place keeps the
// wording of the API consistent.
package app

const (
	StatusHealthy        = "healthy"
	DatabaseConnected    = "connected"
	DatabaseNotAvailable = "not available"
)

const (
	ErrNotFound       = "Not found"
	ErrInternalServer = "Internal server error"
	ErrNoDataProvided = "No data provided"
	ErrInvalidJSON    = "Invalid JSON"
	ErrInvalidCreds   = "Invalid credentials"
	ErrTokenMissing   = "Token is missing"
	ErrTokenExpired   = "Token has expired"
	ErrTokenInvalid   = "Token is invalid"
	ErrUserExists     = "User already exists"
	ErrUserNotFound   = "User not found"
	ErrVideoNotFound  = "Video not found"
	ErrInvalidVideoID = "Invalid video ID"
	ErrInvalidField   = "Invalid field value"
	ErrRegistration   = "Registration failed"
	ErrLogin          = "Login failed"
	ErrFetchProfile   = "Failed to fetch profile"
	ErrUpdateProfile  = "Failed to update profile"
	ErrFetchHistory   = "Failed to fetch history"
	ErrAddFavorite    = "Failed to add favorite"
	ErrFetchSubscr    = "Failed to fetch subscription info"
	ErrFetchTrending  = "Failed to fetch trending elements"
	ErrFetchAnalytics = "Failed to fetch analytics"
	ErrGenerateVideo  = "Failed to generate video"
	ErrTimeout        = "Request timed out"
)

const (
	MsgNotFound           = "The requested resource was not found"
	MsgInternalServer     = "Something went wrong on the server"
	MsgUserRegistered     = "User registered successfully"
	MsgLoginSuccessful    = "Login successful"
	MsgProfileUpdated     = "Profile updated successfully"
	MsgFavoriteAdded      = "Added to favorites successfully"
	MsgUserExists         = "Username or email is already taken"
	MsgVideoNotFound      = "No video with this ID in your history"
	MsgInvalidVideoID     = "Video ID must be a positive integer"
	MsgUnknownIdentity    = "Token does not refer to a registered user"
	MsgMalformedBody      = "Request body must be a JSON object"
	MsgInvalidFieldFormat = "Profile field has an unexpected type"
	MsgTimeout            = "The request took too long to process"
)

// AvailableEndpoints is reported by the 404 response.
var AvailableEndpoints = []string{
	"/api/health",
	"/api/generate-video",
	"/api/trending-elements",
	"/api/analytics",
	"/api/register",
	"/api/login",
	"/api/profile",
}
