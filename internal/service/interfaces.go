// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages users. Names are validated but stored as given.
type UserService interface {
	CreateUser(ctx context.Context, form models.UserForm) error
	UpdateUser(ctx context.Context, userID int64, form models.UserForm) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, int64, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// TodoService manages the todos of the calling user. Every method is scoped
// by the owner id resolved from the request identity.
type TodoService interface {
	CreateTodo(ctx context.Context, userID int64, form models.TodoForm) error
	GetTodos(ctx context.Context, userID int64, query models.PageQuery) (models.TodoPage, error)
	UpdateTodo(ctx context.Context, userID, todoID int64, form models.TodoForm) error
	DeleteTodo(ctx context.Context, userID, todoID int64) error
}

// IdentityService turns a request credential into the id of an existing user.
// The header based implementation expects the numeric user id itself; a
// token or session resolver can replace it without touching handlers.
type IdentityService interface {
	ResolveIdentity(ctx context.Context, credential string) (int64, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
