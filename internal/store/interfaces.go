// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is worth retrying.
// Each supported dialect provides its own implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists rows of the users table.
type UserRepository interface {
	// CreateUser inserts a user with the given name.
	// Returns [ErrNothingAffected] if the insert reported zero rows.
	CreateUser(ctx context.Context, user models.User) error

	// UpdateUserName sets the name of the user with user.ID.
	// Returns [ErrUserNotFound] when no row matched.
	UpdateUserName(ctx context.Context, user models.User) error

	// FindUserByID returns the user with the given id or [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UserExists reports whether a user with the given id is stored.
	UserExists(ctx context.Context, userID int64) (bool, error)

	// GetAllUsers returns every user ordered by id.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) (int64, error)

	// DeleteUserCascade removes the user and all todos owned by it in one
	// transaction. Returns [ErrUserNotFound] if no user row was deleted.
	DeleteUserCascade(ctx context.Context, userID int64) error
}

// TodoRepository persists rows of the user_todos table.
// Every method taking an owner id scopes its statement by that owner.
type TodoRepository interface {
	// CreateTodo inserts a todo owned by todo.UserID.
	// Returns [ErrNothingAffected] if the insert reported zero rows.
	CreateTodo(ctx context.Context, todo models.Todo) error

	// GetTodos returns one page of the owner's todos ordered by id.
	GetTodos(ctx context.Context, userID int64, page models.Page) ([]models.Todo, error)

	// CountTodos returns the number of todos owned by userID.
	CountTodos(ctx context.Context, userID int64) (int64, error)

	// TodoExists reports whether a todo with the id belongs to userID.
	TodoExists(ctx context.Context, todoID, userID int64) (bool, error)

	// UpdateTodo sets title and description of the todo matching
	// todo.ID and todo.UserID. Returns [ErrNothingAffected] when no row matched.
	UpdateTodo(ctx context.Context, todo models.Todo) error

	// DeleteTodo removes the todo matching id and owner.
	// Returns [ErrNothingAffected] when no row matched.
	DeleteTodo(ctx context.Context, todoID, userID int64) error
}
