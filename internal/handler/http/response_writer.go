// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// responseWriter records the status code and body size written by the
// downstream handler so the logging and metrics middleware can report them.
// WriteHeader is forwarded to the wrapped writer only once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 status when WriteHeader was not called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// statusCode returns the recorded status, 200 when nothing was written.
func (w *responseWriter) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// writeEnvelope writes resp as JSON with the given status. A failed write is
// only logged: the status line is already on the wire.
func writeEnvelope(w http.ResponseWriter, r *http.Request, resp models.Response, status int) {
	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeEnvelope").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, message string, status int) {
	writeEnvelope(w, r, models.NewErrorResponse(message), status)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, msgRouteNotFound, http.StatusNotFound)
}
