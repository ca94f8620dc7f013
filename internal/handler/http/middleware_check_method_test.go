// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux so the method check is tested
// without services.
func buildRouter() *chi.Mux {
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router := chi.NewRouter()
	router.Post("/create_user", ok(http.StatusCreated))
	router.Put("/update_user/{id}", ok(http.StatusAccepted))
	router.Delete("/update_user/{id}", ok(http.StatusAccepted))
	router.Get("/get_users", ok(http.StatusOK))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "registered method passes through",
			method:         http.MethodPost,
			path:           "/create_user",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "registered method on parameterised route",
			method:         http.MethodPut,
			path:           "/update_user/1",
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "GET on POST-only route",
			method:         http.MethodGet,
			path:           "/create_user",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "POST",
		},
		{
			name:           "POST on parameterised route lists every allowed method",
			method:         http.MethodPost,
			path:           "/update_user/1",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "PUT, DELETE",
		},
		{
			name:           "DELETE on GET-only route",
			method:         http.MethodDelete,
			path:           "/get_users",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedAllow:  "GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedAllow, rr.Header().Get("Allow"))
			if tt.expectedStatus == http.StatusMethodNotAllowed {
				assert.JSONEq(t, `{"data":"null","meta":{"data":"Method not allowed!"}}`, rr.Body.String())
			}
		})
	}
}

func TestCheckHTTPMethod_UnknownPathStaysNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
