// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

type messageEnvelope[T any] struct {
	Data T                  `json:"data"`
	Meta models.MessageMeta `json:"meta"`
}

type listEnvelope[T any] struct {
	Data []T             `json:"data"`
	Meta models.TotalMeta `json:"meta"`
}

type httpTodoKeeperAdapter struct {
	client         *utils.HTTPClient
	identityHeader string

	logger *logger.Logger
}

// NewHTTPTodoKeeperAdapter constructs the HTTP implementation of
// [TodoKeeperAdapter]. A blank cfg.IdentityHeader falls back to
// [config.DefaultIdentityHeader]. It returns an error if cfg.HTTPAddress is
// empty or cannot be parsed as a URL.
func NewHTTPTodoKeeperAdapter(cfg config.ClientAdapter, logger *logger.Logger) (TodoKeeperAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	identityHeader := strings.TrimSpace(cfg.IdentityHeader)
	if identityHeader == "" {
		identityHeader = config.DefaultIdentityHeader
	}

	return &httpTodoKeeperAdapter{
		client:         utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		identityHeader: identityHeader,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [TodoKeeperAdapter]. It POSTs the form to /create_user.
func (h *httpTodoKeeperAdapter) CreateUser(ctx context.Context, form models.UserForm) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"name": form.Name}).
		Post("/create_user")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return h.check(resp, "CreateUser")
}

// UpdateUser implements [TodoKeeperAdapter]. It PUTs the form to
// /update_user/{id} and decodes the returned user.
func (h *httpTodoKeeperAdapter) UpdateUser(ctx context.Context, userID int64, form models.UserForm) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		SetFormData(map[string]string{"name": form.Name}).
		Put("/update_user/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = h.check(resp, "UpdateUser"); err != nil {
		return models.User{}, err
	}

	var env messageEnvelope[models.User]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.User{}, fmt.Errorf("decode update user response: %w", err)
	}
	return env.Data, nil
}

// GetUsers implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) GetUsers(ctx context.Context) ([]models.User, int64, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/get_users")
	if err != nil {
		return nil, 0, fmt.Errorf("get users request: %w", err)
	}
	if err = h.check(resp, "GetUsers"); err != nil {
		return nil, 0, err
	}

	var env listEnvelope[models.User]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, 0, fmt.Errorf("decode get users response: %w", err)
	}
	return env.Data, env.Meta.TotalData, nil
}

// DeleteUser implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) DeleteUser(ctx context.Context, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(userID, 10)).
		Delete("/delete_user/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return h.check(resp, "DeleteUser")
}

// CreateTodo implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) CreateTodo(ctx context.Context, callerID int64, form models.TodoForm) error {
	resp, err := h.callerRequest(ctx, callerID).
		SetFormData(todoFormData(form)).
		Post("/create_todo")
	if err != nil {
		return fmt.Errorf("create todo request: %w", err)
	}

	return h.check(resp, "CreateTodo")
}

// GetMyTodos implements [TodoKeeperAdapter]. Returned todos carry callerID
// as their owner since the server never exposes it.
func (h *httpTodoKeeperAdapter) GetMyTodos(ctx context.Context, callerID int64, page models.Page) (models.TodoPage, error) {
	resp, err := h.callerRequest(ctx, callerID).
		SetQueryParams(map[string]string{
			"offset": strconv.FormatUint(page.Offset, 10),
			"limit":  strconv.FormatUint(page.Limit, 10),
		}).
		Get("/get_my_todos")
	if err != nil {
		return models.TodoPage{}, fmt.Errorf("get my todos request: %w", err)
	}
	if err = h.check(resp, "GetMyTodos"); err != nil {
		return models.TodoPage{}, err
	}

	var env listEnvelope[models.Todo]
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.TodoPage{}, fmt.Errorf("decode get my todos response: %w", err)
	}
	for i := range env.Data {
		env.Data[i].UserID = callerID
	}

	return models.TodoPage{Todos: env.Data, Total: env.Meta.TotalData}, nil
}

// UpdateTodo implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) UpdateTodo(ctx context.Context, callerID, todoID int64, form models.TodoForm) error {
	resp, err := h.callerRequest(ctx, callerID).
		SetPathParam("id", strconv.FormatInt(todoID, 10)).
		SetFormData(todoFormData(form)).
		Put("/update_todo/{id}")
	if err != nil {
		return fmt.Errorf("update todo request: %w", err)
	}

	return h.check(resp, "UpdateTodo")
}

// DeleteTodo implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) DeleteTodo(ctx context.Context, callerID, todoID int64) error {
	resp, err := h.callerRequest(ctx, callerID).
		SetPathParam("id", strconv.FormatInt(todoID, 10)).
		Delete("/delete_todo/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return h.check(resp, "DeleteTodo")
}

// GetVersion implements [TodoKeeperAdapter].
func (h *httpTodoKeeperAdapter) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = h.check(resp, "GetVersion"); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpTodoKeeperAdapter) callerRequest(ctx context.Context, callerID int64) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(h.identityHeader, strconv.FormatInt(callerID, 10))
}

func (h *httpTodoKeeperAdapter) check(resp *resty.Response, method string) error {
	err := mapHTTPError(resp)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "*httpTodoKeeperAdapter."+method).
			Int("status", resp.StatusCode()).
			Msg("request rejected by server")
	}
	return err
}

func todoFormData(form models.TodoForm) map[string]string {
	return map[string]string{
		"title":       form.Title,
		"description": form.Description,
	}
}
