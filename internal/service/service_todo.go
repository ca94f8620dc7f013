// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewTodoService constructs a [TodoService] around the given repository.
func NewTodoService(todoRepository store.TodoRepository, validator validators.Validator, logger *logger.Logger) TodoService {
	logger.Debug().Msg("creating todo service")
	return &todoService{
		todoRepository: todoRepository,
		validator:      validator,
		logger:         logger,
	}
}

// trimmed returns the form with surrounding whitespace removed from both fields.
func trimmed(form models.TodoForm) models.TodoForm {
	return models.TodoForm{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
	}
}

func (s *todoService) CreateTodo(ctx context.Context, userID int64, form models.TodoForm) error {
	log := logger.FromContext(ctx)

	form = trimmed(form)
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*todoService.CreateTodo").Int64("user_id", userID).Msg("invalid todo form")
		return err
	}

	todo := models.Todo{Title: form.Title, Description: form.Description, UserID: userID}
	if err := s.todoRepository.CreateTodo(ctx, todo); err != nil {
		log.Err(err).Str("func", "*todoService.CreateTodo").Int64("user_id", userID).Msg("todo creation ended with error")
		return fmt.Errorf("todo creation ended with error: %w", err)
	}

	return nil
}

// GetTodos returns one page of the caller's todos. Total counts every todo
// of the caller, not just the page.
func (s *todoService) GetTodos(ctx context.Context, userID int64, query models.PageQuery) (models.TodoPage, error) {
	log := logger.FromContext(ctx)

	page, err := validators.ParsePage(ctx, s.validator, query)
	if err != nil {
		log.Debug().Err(err).Str("func", "*todoService.GetTodos").Int64("user_id", userID).Msg("invalid page query")
		return models.TodoPage{}, err
	}

	todos, err := s.todoRepository.GetTodos(ctx, userID, page)
	if err != nil {
		log.Err(err).Str("func", "*todoService.GetTodos").Int64("user_id", userID).Msg("failed to get todos")
		return models.TodoPage{}, fmt.Errorf("failed to get todos: %w", err)
	}

	total, err := s.todoRepository.CountTodos(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*todoService.GetTodos").Int64("user_id", userID).Msg("failed to count todos")
		return models.TodoPage{}, fmt.Errorf("failed to count todos: %w", err)
	}

	return models.TodoPage{Todos: todos, Total: total}, nil
}

// UpdateTodo checks ownership before validating the form, so an unknown or
// foreign todo is reported as [store.ErrTodoNotFound] even with a bad form.
func (s *todoService) UpdateTodo(ctx context.Context, userID, todoID int64, form models.TodoForm) error {
	log := logger.FromContext(ctx)

	if err := s.ensureOwned(ctx, "*todoService.UpdateTodo", userID, todoID); err != nil {
		return err
	}

	form = trimmed(form)
	if err := s.validator.Validate(ctx, form); err != nil {
		log.Debug().Err(err).Str("func", "*todoService.UpdateTodo").Int64("todo_id", todoID).Msg("invalid todo form")
		return err
	}

	todo := models.Todo{ID: todoID, Title: form.Title, Description: form.Description, UserID: userID}
	if err := s.todoRepository.UpdateTodo(ctx, todo); err != nil {
		log.Err(err).Str("func", "*todoService.UpdateTodo").Int64("todo_id", todoID).Msg("todo update ended with error")
		return fmt.Errorf("todo update ended with error: %w", err)
	}

	return nil
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	if err := s.ensureOwned(ctx, "*todoService.DeleteTodo", userID, todoID); err != nil {
		return err
	}

	if err := s.todoRepository.DeleteTodo(ctx, todoID, userID); err != nil {
		log.Err(err).Str("func", "*todoService.DeleteTodo").Int64("todo_id", todoID).Msg("todo deletion ended with error")
		return fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return nil
}

func (s *todoService) ensureOwned(ctx context.Context, fn string, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	exists, err := s.todoRepository.TodoExists(ctx, todoID, userID)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("todo_id", todoID).Msg("failed to check todo ownership")
		return fmt.Errorf("failed to check todo ownership: %w", err)
	}
	if !exists {
		log.Debug().Str("func", fn).Int64("todo_id", todoID).Int64("user_id", userID).Msg("todo not found for owner")
		return store.ErrTodoNotFound
	}

	return nil
}
