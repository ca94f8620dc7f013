// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"strconv"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
)

// validationMessages maps validator sentinels to the message shown to the
// caller. The offset and limit failures share one message.
var validationMessages = map[error]string{
	validators.ErrEmptyName:          "Name can not be empty!",
	validators.ErrNameTooLong:        "Name is too long!",
	validators.ErrEmptyTitle:         "Please provide title",
	validators.ErrTitleTooLong:       "Title is too long",
	validators.ErrEmptyDescription:   "Please provide description",
	validators.ErrDescriptionTooLong: "Description is too long",
	validators.ErrInvalidOffset:      "Please provide valid offset",
	validators.ErrInvalidLimit:       "Please provide valid offset",
}

// validationMessage reports the caller facing message for a validation
// failure. ok is false when err is not a validation failure.
func validationMessage(err error) (message string, ok bool) {
	for target, msg := range validationMessages {
		if errors.Is(err, target) {
			return msg, true
		}
	}
	return "", false
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
