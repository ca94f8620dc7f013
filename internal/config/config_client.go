// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Defaults applied to [ClientConfig] fields left empty by every source.
const (
	DefaultClientAddress  = "localhost:8080"
	DefaultClientTimeout  = 15 * time.Second
	DefaultClientLogLevel = "warn"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address, with or without scheme.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// IdentityHeader is the header carrying the caller id on todo endpoints.
	IdentityHeader string `env:"IDENTITY_HEADER"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request settings.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// LogLevel is the zerolog level name used by the client.
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

// GetClientConfig loads the client configuration from environment variables
// and then from flags found in args. Flags win over environment values.
// The arguments left after the flags are returned as the command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}
	cfg.merge(flagsCfg)
	cfg.applyDefaults()

	return cfg, rest, cfg.validate()
}

// parseClientFlags parses the client flags.
//
// Flags:
//
//	-a server address
//	-identity-header name of the header carrying the user id
//	-request-timeout request timeout (e.g., "5s")
//	-log-level zerolog level name
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("go-todo-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.Adapter.IdentityHeader, "identity-header", "", "Header carrying the caller user id")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

func (cfg *ClientConfig) merge(src *ClientConfig) {
	if src.Adapter.HTTPAddress != "" {
		cfg.Adapter.HTTPAddress = src.Adapter.HTTPAddress
	}
	if src.Adapter.RequestTimeout != 0 {
		cfg.Adapter.RequestTimeout = src.Adapter.RequestTimeout
	}
	if src.Adapter.IdentityHeader != "" {
		cfg.Adapter.IdentityHeader = src.Adapter.IdentityHeader
	}
	if src.LogLevel != "" {
		cfg.LogLevel = src.LogLevel
	}
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientTimeout
	}
	if cfg.Adapter.IdentityHeader == "" {
		cfg.Adapter.IdentityHeader = DefaultIdentityHeader
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultClientLogLevel
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if strings.TrimSpace(cfg.Adapter.IdentityHeader) == "" {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
