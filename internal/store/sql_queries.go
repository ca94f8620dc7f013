// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

var (
	usersTable = models.User{}.TableName()
	todosTable = models.Todo{}.TableName()
)

const (
	columnID          = "id"
	columnUserName    = "user_name"
	columnTitle       = "title"
	columnDescription = "description"
	columnUserID      = "user_id"

	countAll = "COUNT(*)"
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(columnUserName).
		Values(user.Name).
		ToSql()
}

func buildUpdateUserNameQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set(columnUserName, user.Name).
		Where(sq.Eq{columnID: user.ID}).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(columnID, columnUserName).
		From(usersTable).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}

func buildCountUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(countAll).
		From(usersTable).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(columnID, columnUserName).
		From(usersTable).
		OrderBy(columnID).
		ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(countAll).
		From(usersTable).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{columnID: userID}).
		ToSql()
}

func buildDeleteUserTodosQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(todosTable).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todosTable).
		Columns(columnTitle, columnDescription, columnUserID).
		Values(todo.Title, todo.Description, todo.UserID).
		ToSql()
}

// buildSelectTodosPageQuery always renders LIMIT together with OFFSET,
// MySQL rejects a bare OFFSET.
func buildSelectTodosPageQuery(b sq.StatementBuilderType, userID int64, page models.Page) (string, []any, error) {
	return b.Select(columnID, columnTitle, columnDescription, columnUserID).
		From(todosTable).
		Where(sq.Eq{columnUserID: userID}).
		OrderBy(columnID).
		Limit(page.Limit).
		Offset(page.Offset).
		ToSql()
}

func buildCountTodosQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(countAll).
		From(todosTable).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}

func buildCountTodoQuery(b sq.StatementBuilderType, todoID, userID int64) (string, []any, error) {
	return b.Select(countAll).
		From(todosTable).
		Where(sq.Eq{columnID: todoID}).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}

func buildUpdateTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Update(todosTable).
		Set(columnTitle, todo.Title).
		Set(columnDescription, todo.Description).
		Where(sq.Eq{columnID: todo.ID}).
		Where(sq.Eq{columnUserID: todo.UserID}).
		ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, todoID, userID int64) (string, []any, error) {
	return b.Delete(todosTable).
		Where(sq.Eq{columnID: todoID}).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
}
