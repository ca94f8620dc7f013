// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// withRateLimit rejects requests with 429 once the shared token bucket is
// empty. It passes everything through when no limit is configured.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withRateLimit").Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			writeError(w, r, msgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
