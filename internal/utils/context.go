// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the HTTP client:
// typed context keys, JSON and text response writers, numeric path parsing,
// the resty client constructor and trace ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the identity middleware stores the
// resolved caller ID.
//
//	ctx := utils.WithUserID(ctx, 42)
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the caller ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the caller ID stored by WithUserID.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
