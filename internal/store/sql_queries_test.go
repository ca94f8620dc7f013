// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	postgresBuilder = newStatementBuilder(config.DriverPostgres)
	mysqlBuilder    = newStatementBuilder(config.DriverMySQL)
)

func Test_tableNamesFollowModels(t *testing.T) {
	assert.Equal(t, "users", usersTable)
	assert.Equal(t, "user_todos", todosTable)

	query, _, err := buildSelectUserByIDQuery(postgresBuilder, 1)
	require.NoError(t, err)
	assert.Contains(t, query, "FROM "+models.User{}.TableName()+" ")

	query, _, err = buildDeleteTodoQuery(postgresBuilder, 1, 2)
	require.NoError(t, err)
	assert.Contains(t, query, "DELETE FROM "+models.Todo{}.TableName()+" ")
}

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(mysqlBuilder, models.User{Name: "  alice  "})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (user_name) VALUES (?)", query)
	// name is stored as given
	assert.Equal(t, []any{"  alice  "}, args)
}

func Test_buildUpdateUserNameQuery(t *testing.T) {
	query, args, err := buildUpdateUserNameQuery(postgresBuilder, models.User{ID: 3, Name: "bob"})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET user_name = $1 WHERE id = $2", query)
	assert.Equal(t, []any{"bob", int64(3)}, args)
}

func Test_buildSelectAllUsersQuery(t *testing.T) {
	query, args, err := buildSelectAllUsersQuery(postgresBuilder)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, user_name FROM users ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_buildCountQueries(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "all users",
			build:     func() (string, []any, error) { return buildCountUsersQuery(postgresBuilder) },
			wantQuery: "SELECT COUNT(*) FROM users",
		},
		{
			name:      "user by id",
			build:     func() (string, []any, error) { return buildCountUserByIDQuery(postgresBuilder, 9) },
			wantQuery: "SELECT COUNT(*) FROM users WHERE id = $1",
			wantArgs:  []any{int64(9)},
		},
		{
			name:      "todos of owner",
			build:     func() (string, []any, error) { return buildCountTodosQuery(mysqlBuilder, 4) },
			wantQuery: "SELECT COUNT(*) FROM user_todos WHERE user_id = ?",
			wantArgs:  []any{int64(4)},
		},
		{
			name:      "todo scoped by owner",
			build:     func() (string, []any, error) { return buildCountTodoQuery(postgresBuilder, 7, 4) },
			wantQuery: "SELECT COUNT(*) FROM user_todos WHERE id = $1 AND user_id = $2",
			wantArgs:  []any{int64(7), int64(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSelectTodosPageQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		page      models.Page
		wantQuery string
	}{
		{
			name:      "postgres first page",
			builder:   postgresBuilder,
			page:      models.Page{Offset: 0, Limit: 2},
			wantQuery: "SELECT id, title, description, user_id FROM user_todos WHERE user_id = $1 ORDER BY id LIMIT 2 OFFSET 0",
		},
		{
			name:      "mysql skips rows",
			builder:   mysqlBuilder,
			page:      models.Page{Offset: 10, Limit: 5},
			wantQuery: "SELECT id, title, description, user_id FROM user_todos WHERE user_id = ? ORDER BY id LIMIT 5 OFFSET 10",
		},
		{
			name:      "zero limit still renders limit",
			builder:   mysqlBuilder,
			page:      models.Page{Offset: 3, Limit: 0},
			wantQuery: "SELECT id, title, description, user_id FROM user_todos WHERE user_id = ? ORDER BY id LIMIT 0 OFFSET 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectTodosPageQuery(tt.builder, 42, tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{int64(42)}, args)
		})
	}
}

func Test_buildInsertTodoQuery(t *testing.T) {
	todo := models.Todo{Title: "buy milk", Description: "2 liters", UserID: 5}

	query, args, err := buildInsertTodoQuery(postgresBuilder, todo)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO user_todos (title,description,user_id) VALUES ($1,$2,$3)", query)
	assert.Equal(t, []any{"buy milk", "2 liters", int64(5)}, args)
}

func Test_buildUpdateTodoQuery_ScopedByOwner(t *testing.T) {
	todo := models.Todo{ID: 8, Title: "t", Description: "d", UserID: 5}

	query, args, err := buildUpdateTodoQuery(mysqlBuilder, todo)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE user_todos SET title = ?, description = ? WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{"t", "d", int64(8), int64(5)}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteTodoQuery(postgresBuilder, 8, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM user_todos WHERE id = $1 AND user_id = $2", query)
	assert.Equal(t, []any{int64(8), int64(5)}, args)

	query, args, err = buildDeleteUserQuery(postgresBuilder, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = $1", query)
	assert.Equal(t, []any{int64(5)}, args)

	query, args, err = buildDeleteUserTodosQuery(mysqlBuilder, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM user_todos WHERE user_id = ?", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_newStatementBuilder_Placeholders(t *testing.T) {
	for driver, want := range map[string]string{
		config.DriverPostgres: "SELECT id, user_name FROM users WHERE id = $1",
		config.DriverMySQL:    "SELECT id, user_name FROM users WHERE id = ?",
		config.DriverSQLite:   "SELECT id, user_name FROM users WHERE id = ?",
	} {
		t.Run(driver, func(t *testing.T) {
			query, _, err := buildSelectUserByIDQuery(newStatementBuilder(driver), 1)
			require.NoError(t, err)
			assert.Equal(t, want, query)
		})
	}
}
