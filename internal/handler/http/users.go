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

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	form := models.UserForm{Name: r.PostFormValue("name")}

	if err := h.services.UserService.CreateUser(r.Context(), form); err != nil {
		if msg, ok := validationMessage(err); ok {
			log.Debug().Err(err).Str("func", "*Handler.createUser").Msg("invalid user form")
			writeError(w, r, msg, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse("", msgUserCreated), http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		log.Debug().Str("func", "*Handler.updateUser").Str("id", chi.URLParam(r, "id")).Msg("invalid user id")
		writeError(w, r, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	form := models.UserForm{Name: r.PostFormValue("name")}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, form)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			log.Debug().Err(err).Str("func", "*Handler.updateUser").Msg("invalid user form")
			writeError(w, r, msg, http.StatusBadRequest)
			return
		}
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*Handler.updateUser").Int64("user_id", userID).Msg("user not found")
			writeError(w, r, msgUserNotFound(userID), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.updateUser").Int64("user_id", userID).Msg("error updating user")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse(user, msgUserUpdated), http.StatusAccepted)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, total, err := h.services.UserService.GetUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUsers").Msg("error getting users")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	writeEnvelope(w, r, models.NewListResponse(users, total), http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		log.Debug().Str("func", "*Handler.deleteUser").Str("id", chi.URLParam(r, "id")).Msg("invalid user id")
		writeError(w, r, msgInvalidUserID, http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*Handler.deleteUser").Int64("user_id", userID).Msg("user not found")
			writeError(w, r, msgUserNotFound(userID), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("user_id", userID).Msg("error deleting user")
		writeError(w, r, msgSomethingWentWrong, http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, r, models.NewMessageResponse(models.NullData, msgUserDeleted), http.StatusAccepted)
}
