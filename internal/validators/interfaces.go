// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request input before it reaches the services.
//
// Core concepts:
//   - Validator: generic interface to validate request models.
//   - Every failure is reported as one of the package sentinel errors so the
//     transport layer can map it to a response message with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input.
	Validate(context.Context, any) error
}
