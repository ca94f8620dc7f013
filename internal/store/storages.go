// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages aggregates the repositories handed to the service layer together
// with the pool they share.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations unless
// cfg.DB.SkipMigrations is set, and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if !cfg.DB.SkipMigrations {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		db:             db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
