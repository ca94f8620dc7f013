// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

// DB wraps the *sql.DB pool together with the dialect specific pieces:
// the squirrel statement builder and the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a pool for cfg.Driver, applies pool limits and pings the
// database.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		conn, err = openPostgres(cfg.DSN)
	case config.DriverMySQL:
		conn, err = openMySQL(cfg.DSN)
	case config.DriverSQLite:
		conn, err = openSQLite(cfg.DSN)
	default:
		log.Error().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("unsupported database driver")
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.Driver == config.DriverSQLite {
		// one writer at a time, otherwise concurrent requests hit SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}

	log.Info().
		Str("func", "NewConnect").
		Str("driver", cfg.Driver).
		Str("database", databaseName(cfg.Driver, cfg.DSN)).
		Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, log), nil
}

// newDB builds the wrapper for an already opened pool.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            newStatementBuilder(driver),
		errorClassificator: newErrorClassificator(driver),
		logger:             log,
	}
}

// Migrate applies the embedded schema for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

// classify renders the retry classification of err for log entries.
func (db *DB) classify(err error) string {
	if db.errorClassificator == nil {
		return NonRetryable.String()
	}
	return db.errorClassificator.Classify(err).String()
}

// newStatementBuilder picks the placeholder format of the dialect:
// $1..$n for Postgres and ? for MySQL and SQLite.
func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func newErrorClassificator(driver string) ErrorClassificator {
	switch driver {
	case config.DriverPostgres:
		return NewPostgresErrorClassifier()
	case config.DriverMySQL:
		return NewMySQLErrorClassifier()
	case config.DriverSQLite:
		return NewSQLiteErrorClassifier()
	}
	return nil
}

// databaseName extracts the database name from a DSN for startup logs.
func databaseName(driver, dsn string) string {
	switch driver {
	case config.DriverPostgres:
		return postgresDatabaseName(dsn)
	case config.DriverMySQL:
		return mysqlDatabaseName(dsn)
	case config.DriverSQLite:
		return sqliteDatabaseName(dsn)
	}
	return ""
}
