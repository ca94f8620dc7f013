// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the todo-keeper HTTP API.
//
// [TodoKeeperAdapter] hides the wire format: requests are sent as HTML forms,
// the caller identity travels in a request header, and every response
// envelope is decoded into models. Non-2xx responses are mapped to the
// sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrForbidden] for a rejected identity).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TodoKeeperAdapter defines client-side access to every todo-keeper endpoint.
type TodoKeeperAdapter interface {
	// CreateUser registers a new user with the given name.
	CreateUser(ctx context.Context, form models.UserForm) error

	// UpdateUser renames the user and returns the stored record.
	UpdateUser(ctx context.Context, userID int64, form models.UserForm) (models.User, error)

	// GetUsers returns every user together with the total count.
	GetUsers(ctx context.Context) ([]models.User, int64, error)

	// DeleteUser removes the user and all of their todos.
	DeleteUser(ctx context.Context, userID int64) error

	// CreateTodo creates a todo owned by callerID.
	CreateTodo(ctx context.Context, callerID int64, form models.TodoForm) error

	// GetMyTodos returns one page of callerID's todos and the total number
	// of todos they own.
	GetMyTodos(ctx context.Context, callerID int64, page models.Page) (models.TodoPage, error)

	// UpdateTodo replaces title and description of a todo owned by callerID.
	UpdateTodo(ctx context.Context, callerID, todoID int64, form models.TodoForm) error

	// DeleteTodo removes a todo owned by callerID.
	DeleteTodo(ctx context.Context, callerID, todoID int64) error

	// GetVersion returns the server version string.
	GetVersion(ctx context.Context) (string, error)
}
