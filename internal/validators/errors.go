// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidOffset      = errors.New("invalid offset")
	ErrInvalidLimit       = errors.New("invalid limit")
)
