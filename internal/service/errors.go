// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidIdentity is returned when the request credential is missing,
	// malformed or does not belong to a stored user.
	ErrInvalidIdentity = errors.New("invalid identity")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
