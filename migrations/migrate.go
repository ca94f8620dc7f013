// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations applies the embedded database schema with goose.
// Every supported SQL dialect has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// dialects maps a configured driver name to the goose dialect and the
// migrations directory inside embedMigrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"postgres": {dialect: "postgres", dir: "postgres"},
	"mysql":    {dialect: "mysql", dir: "mysql"},
	"sqlite3":  {dialect: "sqlite3", dir: "sqlite3"},
}

// Migrate applies all pending migrations for the given driver
// ("postgres", "mysql" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
