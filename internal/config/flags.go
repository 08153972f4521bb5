package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseServerFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-no-db run without persistence
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-min-delay, -max-delay simulated generation delay range
//	-trend-sync-interval trend popularity refresh period
//	-log-level log level
func parseServerFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var noDB bool
	var tokenSignKey, tokenIssuer, logLevel string
	var tokenDuration, requestTimeout time.Duration
	var minDelay, maxDelay, trendSyncInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&noDB, "no-db", false, "Run without persistence")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&minDelay, "min-delay", 0, "Minimum simulated generation delay")
	fs.DurationVar(&maxDelay, "max-delay", 0, "Maximum simulated generation delay")
	fs.DurationVar(&trendSyncInterval, "trend-sync-interval", 0, "Trend popularity refresh period")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing server flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:      databaseDSN,
				Disabled: noDB,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Generation: Generation{
			MinDelay: minDelay,
			MaxDelay: maxDelay,
		},
		Workers: Workers{
			TrendSyncInterval: trendSyncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseClientFlags parses the client flags from args. Positional arguments
// are joined into the prompt.
//
// Flags:
//
//	-s server base URL
//	-u username
//	-p password
//	-e email (with -register)
//	-register register the account first
//	-copy copy the generated description to the clipboard
//	-trending print the current top trends
//	-timeout request timeout
//	-c/-config json file path with configs
func parseClientFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	var baseURL, username, password, email, jsonConfigPath string
	var register, copyDescription, trending bool
	var timeout time.Duration

	fs.StringVar(&baseURL, "s", "", "Server base URL")
	fs.StringVar(&username, "u", "", "Username")
	fs.StringVar(&password, "p", "", "Password")
	fs.StringVar(&email, "e", "", "Email used with -register")
	fs.BoolVar(&register, "register", false, "Register the account first")
	fs.BoolVar(&copyDescription, "copy", false, "Copy the generated description to the clipboard")
	fs.BoolVar(&trending, "trending", false, "Print the current top trends")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return &StructuredConfig{
		Client: Client{
			BaseURL:        baseURL,
			RequestTimeout: timeout,
			Username:       username,
			Password:       password,
			Email:          email,
			Register:       register,
			Copy:           copyDescription,
			Trending:       trending,
			Prompt:         strings.Join(fs.Args(), " "),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither Host nor Port is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
