// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the database/sql implementation of [TodoRepository]
// working against the "user_todos" table.
type todoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTodoQuery(r.db.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Int64("user_id", todo.UserID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, "*todoRepository.CreateTodo", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Error().Str("func", "*todoRepository.CreateTodo").Int64("user_id", todo.UserID).Msg("insert affected no rows")
		return ErrNothingAffected
	}

	return nil
}

// GetTodos never returns a nil slice so an empty page encodes as [].
func (r *todoRepository) GetTodos(ctx context.Context, userID int64, page models.Page) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodosPageQuery(r.db.builder, userID, page)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodos").Int64("user_id", userID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.GetTodos").
			Int64("user_id", userID).
			Uint64("offset", page.Offset).
			Uint64("limit", page.Limit).
			Str("classification", r.db.classify(err)).
			Msg("failed to execute query for getting user todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, min(page.Limit, 50))

	for rows.Next() {
		var todo models.Todo
		if scanErr := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.UserID); scanErr != nil {
			log.Err(scanErr).Str("func", "*todoRepository.GetTodos").Int64("user_id", userID).Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*todoRepository.GetTodos").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

func (r *todoRepository) CountTodos(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTodosQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CountTodos").Int64("user_id", userID).Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.count(ctx, "*todoRepository.CountTodos", query, args...)
}

func (r *todoRepository) TodoExists(ctx context.Context, todoID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTodoQuery(r.db.builder, todoID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.TodoExists").Int64("todo_id", todoID).Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	total, err := r.db.count(ctx, "*todoRepository.TodoExists", query, args...)
	if err != nil {
		return false, err
	}

	return total > 0, nil
}

func (r *todoRepository) UpdateTodo(ctx context.Context, todo models.Todo) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(r.db.builder, todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Int64("todo_id", todo.ID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, "*todoRepository.UpdateTodo", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Error().
			Str("func", "*todoRepository.UpdateTodo").
			Int64("todo_id", todo.ID).
			Int64("user_id", todo.UserID).
			Msg("update affected no rows")
		return ErrNothingAffected
	}

	return nil
}

func (r *todoRepository) DeleteTodo(ctx context.Context, todoID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(r.db.builder, todoID, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Int64("todo_id", todoID).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.db.exec(ctx, "*todoRepository.DeleteTodo", query, args...)
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Error().
			Str("func", "*todoRepository.DeleteTodo").
			Int64("todo_id", todoID).
			Int64("user_id", userID).
			Msg("delete affected no rows")
		return ErrNothingAffected
	}

	return nil
}
