// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the todo keeper.
//
// It owns the listener lifecycle: binding the configured address, serving
// until SIGTERM, SIGINT or SIGQUIT arrives, and shutting down gracefully.
package server
