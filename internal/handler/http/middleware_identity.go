// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

// withIdentity resolves the caller from the identity header and stores the
// user id in the request context under [utils.UserIDCtxKey].
//
// Any failure, including a storage error during the lookup, is answered with
// 403 Forbidden before the handler runs.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		credential := r.Header.Get(h.identityHeader)

		userID, err := h.services.IdentityService.ResolveIdentity(r.Context(), credential)
		if err != nil {
			if errors.Is(err, service.ErrInvalidIdentity) {
				log.Debug().Err(err).Str("func", "*Handler.withIdentity").Msg("identity rejected")
			} else {
				log.Err(err).Str("func", "*Handler.withIdentity").Msg("error resolving identity")
			}
			writeError(w, r, msgInvalidIdentity, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}
