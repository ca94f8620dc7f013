// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and an "application/json" content type.
//
// If marshaling fails it responds with 500 Internal Server Error and returns
// the wrapped error.
//
//	utils.WriteJSON(w, models.NewErrorResponse("User not found"), http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes a plain text body with the given status code.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}

// ParseID parses a decimal identifier taken from a path or header value.
// Ids are 32-bit in storage, so larger values are rejected.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return id, true
}
