// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// An [App] maps one command line (e.g. "create-todo 1 title description")
// to a single call of the todo-keeper adapter and prints the result as JSON.
package client
