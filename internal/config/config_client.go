package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by the command-line
// client.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	Username       string
	Password       string
	Email          string
	Register       bool
	Copy           bool
	Trending       bool
	Prompt         string
}

// GetClientConfig builds and validates the client configuration from the
// environment, client flags parsed from args, and an optional JSON file.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args, parseClientFlags).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		RequestTimeout: cfg.Client.RequestTimeout,
		Username:       cfg.Client.Username,
		Password:       cfg.Client.Password,
		Email:          cfg.Client.Email,
		Register:       cfg.Client.Register,
		Copy:           cfg.Client.Copy,
		Trending:       cfg.Client.Trending,
		Prompt:         cfg.Client.Prompt,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}
