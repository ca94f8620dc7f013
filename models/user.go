// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that owns todos.
type User struct {
	// ID is the database-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user. It must not be blank and is
	// limited to 2000 characters.
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
