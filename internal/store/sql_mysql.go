// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers treated as transient.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html.
const (
	mysqlErrTooManyConnections uint16 = 1040
	mysqlErrLockWaitTimeout    uint16 = 1205
	mysqlErrDeadlock           uint16 = 1213
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier] ready for use.
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// openMySQL forces clientFoundRows so an UPDATE that matches a row but does
// not change it still reports one affected row, like the other dialects.
func openMySQL(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	cfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}

func mysqlDatabaseName(dsn string) string {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return ""
	}
	return cfg.DBName
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrTooManyConnections, mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return Retryable
		}
	}

	return NonRetryable
}
