// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON config files.
type StructuredJSONConfig struct {
	App struct {
		IdentityHeader string `json:"identity_header"`
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver"`
			DSN            string `json:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns"`
			MaxIdleConns   int    `json:"max_idle_conns"`
			SkipMigrations bool   `json:"skip_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			IdentityHeader: jsonCfg.App.IdentityHeader,
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns:   jsonCfg.Storage.DB.MaxIdleConns,
				SkipMigrations: jsonCfg.Storage.DB.SkipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
