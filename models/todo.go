// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Todo is a single task owned by a user.
type Todo struct {
	// ID is the database-assigned unique identifier of the todo.
	ID int64 `json:"id"`

	// Title is a short non-blank summary, at most 500 characters.
	Title string `json:"title"`

	// Description is a non-blank body, at most 5000 characters.
	Description string `json:"description"`

	// UserID references the owning user. It is never exposed in responses:
	// the owner is always the caller.
	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "user_todos"
}

// Page describes an offset/limit window over a user's todos.
type Page struct {
	Offset uint64
	Limit  uint64
}

// TodoPage is a single page of todos together with the total number
// of todos the owner has, regardless of pagination.
type TodoPage struct {
	Todos []Todo
	Total int64
}
