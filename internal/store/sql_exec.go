// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// exec runs a DML statement and returns the number of affected rows.
func (db *DB) exec(ctx context.Context, fn, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("classification", db.classify(err)).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// count runs a single-column COUNT(*) query.
func (db *DB) count(ctx context.Context, fn, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("classification", db.classify(err)).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
