package service

import (
	"context"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// ClientAuthService defines the client-side contract for account creation and
// authentication. Implementations communicate with the remote server through
// a [adapter.ServerAdapter] and keep the issued token inside the adapter.
type ClientAuthService interface {
	// Signup creates a new account on the server with the given credentials.
	// On success the adapter holds the issued token and the returned user
	// carries the server-assigned id. Returns an error if the request fails
	// or the username is already taken.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates against the server. On success the adapter holds
	// the issued token. Returns an error if the credentials are wrong or the
	// request fails.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// ClientTodoService defines the client-side contract for managing tasks.
// All operations are forwarded to the server; transport errors are mapped to
// the business errors of this package so callers can use [errors.Is].
type ClientTodoService interface {
	// Create sends a new task to the server and returns the persisted record.
	Create(ctx context.Context, input models.TodoInput) (models.Todo, error)

	// Get fetches a single task by id.
	Get(ctx context.Context, todoID string) (models.Todo, error)

	// GetAll fetches every task of the user identified by userID, newest
	// first.
	GetAll(ctx context.Context, userID string) ([]models.Todo, error)

	// Update overwrites the mutable fields of the task identified by todoID
	// and returns the updated record.
	Update(ctx context.Context, todoID string, input models.TodoInput) (models.Todo, error)

	// Delete removes the task identified by todoID.
	Delete(ctx context.Context, todoID string) error
}
