// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "all interfaces", input: "0.0.0.0:8080", expectedHost: "0.0.0.0", expectedPort: 8080},
		{name: "empty host", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "ipv4", input: "192.168.1.10:3000", expectedHost: "192.168.1.10", expectedPort: 3000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "invalid host", input: "not-an-ip:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9000",
				"-d", "todo.db",
				"-db-driver", "sqlite3",
				"-skip-migrations",
				"-c", "/etc/todo.json",
				"-identity-header", "x-user",
				"-version", "0.1.0",
				"-request-timeout", "5s",
				"-rate-limit", "100",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
				assert.Equal(t, "todo.db", cfg.Storage.DB.DSN)
				assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
				assert.True(t, cfg.Storage.DB.SkipMigrations)
				assert.Equal(t, "/etc/todo.json", cfg.JSONFilePath)
				assert.Equal(t, "x-user", cfg.App.IdentityHeader)
				assert.Equal(t, "0.1.0", cfg.App.Version)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.InDelta(t, 100.0, cfg.Server.RateLimit, 0.0001)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/tmp/cfg.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidAddress tests ParseFlags with invalid addresses
func TestParseFlags_InvalidAddress(t *testing.T) {
	tests := []string{"localhost", "bad-host:8080", "localhost:-1"}

	for _, address := range tests {
		t.Run(address, func(t *testing.T) {
			cfg, err := ParseFlags([]string{"-a", address})
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
