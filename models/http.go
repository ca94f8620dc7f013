// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserForm holds the form fields accepted by create-user and update-user.
type UserForm struct {
	Name string `form:"name" validate:"notblank,max=2000"`
}

// TodoForm holds the form fields accepted by create-todo and update-todo.
// Blank fields are reported before oversized ones, title before description.
type TodoForm struct {
	Title       string `form:"title" validate:"notblank,max=500"`
	Description string `form:"description" validate:"notblank,max=5000"`
}

// PageQuery holds the raw query parameters of get-my-todos. Both values
// must be non-negative 32-bit integers.
type PageQuery struct {
	Offset string `query:"offset" validate:"required,pagenum"`
	Limit  string `query:"limit" validate:"required,pagenum"`
}
