// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the todo keeper.
//
// It wires the user and todo routes on a chi router and answers every request
// with the JSON envelope {"data": ..., "meta": ...}. Cross-cutting concerns
// such as identity assertion, request tracing, access logging, metrics, rate
// limiting and response compression are handled here before requests reach
// the service layer.
package http
