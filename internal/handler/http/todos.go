// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// unknownTodoID stands in for a path id that is not a number, so the lookup
// reports it as a todo that does not exist.
const unknownTodoID int64 = -1

func todoFormFromRequest(r *http.Request) models.TodoForm {
	return models.TodoForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
	}
}

func todoIDFromRequest(r *http.Request) int64 {
	todoID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		return unknownTodoID
	}
	return todoID
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.services.TodoService.CreateTodo(r.Context(), userID, todoFormFromRequest(r)); err != nil {
		if msg, ok := validationMessage(err); ok {
			log.Debug().Err(err).Str("func", "*Handler.createTodo").Msg("invalid todo form")
			writeError(w, r, msg, http.StatusNotAcceptable)
			return
		}
		log.Err(err).Str("func", "*Handler.createTodo").Int64("user_id", userID).Msg("error creating todo")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse(dataTodoCreated, msgSuccess), http.StatusAccepted)
}

func (h *Handler) getMyTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())

	query := models.PageQuery{
		Offset: r.URL.Query().Get("offset"),
		Limit:  r.URL.Query().Get("limit"),
	}

	page, err := h.services.TodoService.GetTodos(r.Context(), userID, query)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			log.Debug().Err(err).Str("func", "*Handler.getMyTodos").Msg("invalid page query")
			writeError(w, r, msg, http.StatusNotAcceptable)
			return
		}
		log.Err(err).Str("func", "*Handler.getMyTodos").Int64("user_id", userID).Msg("error getting todos")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	todos := page.Todos
	if todos == nil {
		todos = []models.Todo{}
	}

	writeEnvelope(w, r, models.NewListResponse(todos, page.Total), http.StatusAccepted)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())
	todoID := todoIDFromRequest(r)

	if err := h.services.TodoService.UpdateTodo(r.Context(), userID, todoID, todoFormFromRequest(r)); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			log.Debug().Str("func", "*Handler.updateTodo").Int64("todo_id", todoID).Msg("todo not found")
			writeError(w, r, msgTodoNotFound(todoID), http.StatusNotFound)
			return
		}
		if msg, ok := validationMessage(err); ok {
			log.Debug().Err(err).Str("func", "*Handler.updateTodo").Msg("invalid todo form")
			writeError(w, r, msg, http.StatusNotAcceptable)
			return
		}
		log.Err(err).Str("func", "*Handler.updateTodo").Int64("todo_id", todoID).Msg("error updating todo")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse(dataTodoUpdated, msgSuccess), http.StatusAccepted)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(r.Context())
	todoID := todoIDFromRequest(r)

	if err := h.services.TodoService.DeleteTodo(r.Context(), userID, todoID); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			log.Debug().Str("func", "*Handler.deleteTodo").Int64("todo_id", todoID).Msg("todo not found")
			writeError(w, r, msgTodoNotFound(todoID), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteTodo").Int64("todo_id", todoID).Msg("error deleting todo")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse(dataTodoDeleted(todoID), msgSuccess), http.StatusAccepted)
}
