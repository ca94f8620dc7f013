// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.metrics.withMetrics)
	router.Use(h.withRateLimit)
	if h.serverCfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.serverCfg.RequestTimeout))
	}

	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())

	// users: no identity required
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/create_user", h.createUser)
		r.Put("/update_user/{id}", h.updateUser)
		r.Get("/get_users", h.getUsers)
		r.Delete("/delete_user/{id}", h.deleteUser)
	})

	// todos: scoped to the asserted identity
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withIdentity)

		r.Post("/create_todo", h.createTodo)
		r.Get("/get_my_todos", h.getMyTodos)
		r.Put("/update_todo/{id}", h.updateTodo)
		r.Delete("/delete_todo/{id}", h.deleteTodo)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
