// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the reported version and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Generation controls the simulated processing of generate-video.
	Generation Generation `envPrefix:"GENERATION_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings of the command-line API client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HS256 secret used to sign and verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required of every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is reported by /api/health.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ServiceName is reported by /api/health.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// LogLevel is one of zerolog's level names ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. It must exceed Generation.MaxDelay.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" URLs open
	// PostgreSQL, anything else is handed to SQLite (e.g. "viralcraft.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Disabled runs the service without persistence.
	// Env: STORAGE_DB_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Generation controls the simulated latency of a generation request.
// The delay is sampled uniformly from [MinDelay, MaxDelay].
type Generation struct {
	// Env: GENERATION_MIN_DELAY
	MinDelay time.Duration `env:"MIN_DELAY"`
	// Env: GENERATION_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// TrendSyncInterval is the period of the trend popularity refresh.
	// Env: WORKERS_TREND_SYNC_INTERVAL
	TrendSyncInterval time.Duration `env:"TREND_SYNC_INTERVAL"`
}

// Client holds settings of the command-line API client.
type Client struct {
	// BaseURL is the server root, e.g. "http://localhost:5000".
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: CLIENT_USERNAME
	Username string `env:"USERNAME"`
	// Env: CLIENT_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: CLIENT_EMAIL
	Email string `env:"EMAIL"`

	// Register creates the account before generating.
	Register bool `env:"REGISTER"`

	// Copy puts the generated description on the system clipboard.
	// Env: CLIENT_COPY
	Copy bool `env:"COPY"`

	// Trending prints the current top trends after the generation.
	// Env: CLIENT_TRENDING
	Trending bool `env:"TRENDING"`

	// Prompt is taken from the positional command-line arguments.
	Prompt string
}

// Defaults returns the values used for every field left empty by all
// configuration sources. TokenSignKey has no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "viral-craft",
			TokenDuration: 24 * time.Hour,
			Version:       "1.0.0",
			ServiceName:   "ViralCraft AI Backend",
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{DSN: "viralcraft.db"},
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Generation: Generation{
			MinDelay: 2 * time.Second,
			MaxDelay: 4 * time.Second,
		},
		Workers: Workers{
			TrendSyncInterval: time.Minute,
		},
		Client: Client{
			BaseURL:        "http://localhost:5000",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args, parseServerFlags).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
