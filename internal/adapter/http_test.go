// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an adapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) *httpTodoKeeperAdapter {
	t.Helper()

	a, err := NewHTTPTodoKeeperAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpTodoKeeperAdapter)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewHTTPTodoKeeperAdapter(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ClientAdapter
		header  string
		wantErr bool
	}{
		{name: "default header", cfg: config.ClientAdapter{HTTPAddress: "localhost:8080"}, header: "user_id"},
		{name: "custom header", cfg: config.ClientAdapter{HTTPAddress: "http://localhost:8080", IdentityHeader: " x-user "}, header: "x-user"},
		{name: "empty address", cfg: config.ClientAdapter{HTTPAddress: "  "}, wantErr: true},
		{name: "no host", cfg: config.ClientAdapter{HTTPAddress: "http://"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPTodoKeeperAdapter(tt.cfg, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.header, a.(*httpTodoKeeperAdapter).identityHeader)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://todo.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://todo.example.com", got)
}

// ── users ───────────────────────────────────────────────────────────────────

func TestCreateUser_SendsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_user", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "Alice", r.PostFormValue("name"))

		writeBody(w, http.StatusCreated, `{"data":"","meta":{"data":"User created successfully!"}}`)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.UserForm{Name: "Alice"}))
}

func TestCreateUser_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusBadRequest, `{"data":"null","meta":{"data":"Name can not be empty!"}}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.UserForm{})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Name can not be empty!")
}

func TestUpdateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/update_user/7", r.URL.Path)
		assert.Equal(t, "Robert", r.PostFormValue("name"))

		writeBody(w, http.StatusAccepted, `{"data":{"id":7,"name":"Robert"},"meta":{"data":"Record Updated Successfully!"}}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), 7, models.UserForm{Name: "Robert"})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 7, Name: "Robert"}, got)
}

func TestUpdateUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusNotFound, `{"data":"null","meta":{"data":"User not found with id 9..."}}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), 9, models.UserForm{Name: "x"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User not found with id 9...")
}

func TestUpdateUser_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusAccepted, `{not json`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateUser(context.Background(), 1, models.UserForm{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode update user response")
}

func TestGetUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get_users", r.URL.Path)

		writeBody(w, http.StatusOK, `{"data":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}],"meta":{"total_data":2}}`)
	}))
	defer srv.Close()

	users, total, err := newTestAdapter(t, srv.URL).GetUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, users)
	assert.Equal(t, int64(2), total)
}

func TestGetUsers_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusInternalServerError, `{"data":"null","meta":{"data":"Something went wrong!"}}`)
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).GetUsers(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestDeleteUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/delete_user/3", r.URL.Path)

		writeBody(w, http.StatusAccepted, `{"data":"null","meta":{"data":"Record deleted Successfully!"}}`)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteUser(context.Background(), 3))
}

// ── todos ───────────────────────────────────────────────────────────────────

func TestCreateTodo_SendsIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_todo", r.URL.Path)
		assert.Equal(t, "5", r.Header.Get("user_id"))
		assert.Equal(t, "buy milk", r.PostFormValue("title"))
		assert.Equal(t, "2 liters", r.PostFormValue("description"))

		writeBody(w, http.StatusCreated, `{"data":"Todo created!","meta":{"data":"Success"}}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).CreateTodo(context.Background(), 5, models.TodoForm{Title: "buy milk", Description: "2 liters"})
	assert.NoError(t, err)
}

func TestCreateTodo_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"forbidden", http.StatusForbidden, `{"data":"null","meta":{"data":"Please provide valid userId!"}}`, ErrForbidden},
		{"not acceptable", http.StatusNotAcceptable, `{"data":"null","meta":{"data":"Please provide title"}}`, ErrNotAcceptable},
		{"too many requests", http.StatusTooManyRequests, `{"data":"null","meta":{"data":"Too many requests!"}}`, ErrTooManyRequests},
		{"method not allowed", http.StatusMethodNotAllowed, `{"data":"null","meta":{"data":"Method not allowed!"}}`, ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeBody(w, tt.status, tt.body)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).CreateTodo(context.Background(), 1, models.TodoForm{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetMyTodos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_my_todos", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("offset"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "4", r.Header.Get("user_id"))

		writeBody(w, http.StatusAccepted, `{"data":[{"id":3,"title":"t3","description":"d"}],"meta":{"total_data":5}}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetMyTodos(context.Background(), 4, models.Page{Offset: 2, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, models.TodoPage{
		Todos: []models.Todo{{ID: 3, Title: "t3", Description: "d", UserID: 4}},
		Total: 5,
	}, got)
}

func TestUpdateTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/update_todo/11", r.URL.Path)
		assert.Equal(t, "new", r.PostFormValue("title"))

		writeBody(w, http.StatusAccepted, `{"data":"Todo updated!","meta":{"data":"Success"}}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateTodo(context.Background(), 1, 11, models.TodoForm{Title: "new", Description: "d"})
	assert.NoError(t, err)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/delete_todo/8", r.URL.Path)
		writeBody(w, http.StatusNotFound, `{"data":"null","meta":{"data":"Todo with id:8 is not exists in database!"}}`)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteTodo(context.Background(), 1, 8)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Todo with id:8 is not exists in database!")
}

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteText(w, "1.2.3", http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestRequest_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).DeleteUser(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete user request")
}

func TestGetUsers_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, _, err := newTestAdapter(t, srv.URL).GetUsers(context.Background())
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}
