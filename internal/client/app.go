// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type command struct {
	usage string
	args  int
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"version":      {usage: "version", args: 0, run: (*App).version},
	"create-user":  {usage: "create-user <name>", args: 1, run: (*App).createUser},
	"update-user":  {usage: "update-user <id> <name>", args: 2, run: (*App).updateUser},
	"get-users":    {usage: "get-users", args: 0, run: (*App).getUsers},
	"delete-user":  {usage: "delete-user <id>", args: 1, run: (*App).deleteUser},
	"create-todo":  {usage: "create-todo <user_id> <title> <description>", args: 3, run: (*App).createTodo},
	"get-my-todos": {usage: "get-my-todos <user_id> <offset> <limit>", args: 3, run: (*App).getMyTodos},
	"update-todo":  {usage: "update-todo <user_id> <id> <title> <description>", args: 4, run: (*App).updateTodo},
	"delete-todo":  {usage: "delete-todo <user_id> <id>", args: 2, run: (*App).deleteTodo},
}

// App runs single client commands against the server.
type App struct {
	adapter adapter.TodoKeeperAdapter
	out     io.Writer

	logger *logger.Logger
}

// NewApp returns an App printing results to out.
func NewApp(todoAdapter adapter.TodoKeeperAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if todoAdapter == nil {
		return nil, errNoAdapterGiven
	}
	return &App{adapter: todoAdapter, out: out, logger: logger}, nil
}

// Run implements [Client]. args[0] names the command, the rest are its
// arguments. An unknown command prints the usage and returns
// [ErrUnknownCommand].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return ErrUnknownCommand
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		a.Usage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(rest) != cmd.args {
		return fmt.Errorf("%w: usage: %s", ErrWrongArguments, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Strs("args", rest).Msg("running command")
	return cmd.run(a, ctx, rest)
}

// Usage prints every known command.
func (a *App) Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	_, _ = fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		_, _ = fmt.Fprintln(a.out, "  "+commands[name].usage)
	}
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.GetVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) createUser(ctx context.Context, args []string) error {
	if err := a.adapter.CreateUser(ctx, models.UserForm{Name: args[0]}); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "created"})
}

func (a *App) updateUser(ctx context.Context, args []string) error {
	userID, err := parseID("id", args[0])
	if err != nil {
		return err
	}

	user, err := a.adapter.UpdateUser(ctx, userID, models.UserForm{Name: args[1]})
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) getUsers(ctx context.Context, _ []string) error {
	users, total, err := a.adapter.GetUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(map[string]any{"users": users, "total": total})
}

func (a *App) deleteUser(ctx context.Context, args []string) error {
	userID, err := parseID("id", args[0])
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteUser(ctx, userID); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "deleted"})
}

func (a *App) createTodo(ctx context.Context, args []string) error {
	callerID, err := parseID("user_id", args[0])
	if err != nil {
		return err
	}

	if err = a.adapter.CreateTodo(ctx, callerID, models.TodoForm{Title: args[1], Description: args[2]}); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "created"})
}

func (a *App) getMyTodos(ctx context.Context, args []string) error {
	callerID, err := parseID("user_id", args[0])
	if err != nil {
		return err
	}
	offset, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: offset %q", ErrWrongArguments, args[1])
	}
	limit, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: limit %q", ErrWrongArguments, args[2])
	}

	page, err := a.adapter.GetMyTodos(ctx, callerID, models.Page{Offset: offset, Limit: limit})
	if err != nil {
		return err
	}
	return a.print(map[string]any{"todos": page.Todos, "total": page.Total})
}

func (a *App) updateTodo(ctx context.Context, args []string) error {
	callerID, err := parseID("user_id", args[0])
	if err != nil {
		return err
	}
	todoID, err := parseID("id", args[1])
	if err != nil {
		return err
	}

	if err = a.adapter.UpdateTodo(ctx, callerID, todoID, models.TodoForm{Title: args[2], Description: args[3]}); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "updated"})
}

func (a *App) deleteTodo(ctx context.Context, args []string) error {
	callerID, err := parseID("user_id", args[0])
	if err != nil {
		return err
	}
	todoID, err := parseID("id", args[1])
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteTodo(ctx, callerID, todoID); err != nil {
		return err
	}
	return a.print(map[string]string{"status": "deleted"})
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrWrongArguments, name, raw)
	}
	return id, nil
}
