// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

// Package adapter provides transport-layer abstractions for communicating
// with the todo server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the todo
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Signup or Login.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Signup sends a registration request with the provided credentials.
	// On success it stores the returned token via SetToken and returns the
	// created user record. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned token via SetToken and returns the user record. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateTodo sends a new task to the server and returns the persisted
	// record with its server-assigned id.
	CreateTodo(ctx context.Context, input models.TodoInput) (models.Todo, error)

	// GetTodo fetches a single task by id. Returns [ErrNotFound] (wrapped)
	// when the task does not exist and [ErrForbidden] when it belongs to
	// another user.
	GetTodo(ctx context.Context, todoID string) (models.Todo, error)

	// GetUserTodos fetches all tasks of the user identified by userID,
	// newest first.
	GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error)

	// UpdateTodo overwrites the mutable fields of the task identified by
	// todoID and returns the updated record.
	UpdateTodo(ctx context.Context, todoID string, input models.TodoInput) (models.Todo, error)

	// DeleteTodo removes the task identified by todoID.
	DeleteTodo(ctx context.Context, todoID string) error
}
