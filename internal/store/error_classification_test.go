// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"serialization", pgError(pgerrcode.SerializationFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"wrapped deadlock", fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestMySQLErrorClassifier(t *testing.T) {
	c := NewMySQLErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"deadlock", &mysql.MySQLError{Number: 1213}, Retryable},
		{"lock wait timeout", &mysql.MySQLError{Number: 1205}, Retryable},
		{"too many connections", &mysql.MySQLError{Number: 1040}, Retryable},
		{"duplicate entry", &mysql.MySQLError{Number: 1062}, NonRetryable},
		{"invalid conn", mysql.ErrInvalidConn, Retryable},
		{"bad conn", fmt.Errorf("wrapped: %w", driver.ErrBadConn), Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"locked", fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), Retryable},
		{"constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_classify(t *testing.T) {
	db := &DB{errorClassificator: NewPostgresErrorClassifier()}
	assert.Equal(t, "retryable", db.classify(pgError(pgerrcode.DeadlockDetected)))

	db = &DB{}
	assert.Equal(t, "non_retryable", db.classify(errors.New("boom")))
}
