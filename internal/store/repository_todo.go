// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// todoRepository is the PostgreSQL-backed implementation of [TodoRepository].
// It executes all todo CRUD operations against the "todos" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (todo_id, user_id, etc.).
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("TodoRepository created")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTodo inserts a new todo record and returns the persisted row.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTodoQuery(todo)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Msg("failed to build insert query")
		return models.Todo{}, err
	}

	var saved models.Todo
	row := r.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&saved.ID, &saved.UserID, &saved.Title, &saved.Progress, &saved.Date); scanErr != nil {
		if r.errorClassificator.Classify(scanErr) == Retryable {
			log.Warn().
				Str("func", "todoRepository.CreateTodo").
				Str("user_id", todo.UserID).
				Msg("transient db error while saving todo")
		}
		log.Err(scanErr).
			Str("func", "todoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Msg("failed to save todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return saved, nil
}

// GetTodoByID retrieves a single todo by its identifier.
//
// Returns [ErrTodoNotFound] when no record matches. Ownership is not checked
// here; the caller decides whether the requester may see the record.
func (r *todoRepository) GetTodoByID(ctx context.Context, id string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTodoByIDQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetTodoByID").
			Str("todo_id", id).
			Msg("failed to build select query")
		return models.Todo{}, err
	}

	var todo models.Todo
	row := r.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Progress, &todo.Date); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(scanErr).
			Str("func", "todoRepository.GetTodoByID").
			Str("todo_id", id).
			Msg("failed to scan todo row")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return todo, nil
}

// GetUserTodos retrieves all todos owned by the given user, newest first.
func (r *todoRepository) GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserTodosQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetUserTodos").
			Str("user_id", userID).
			Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.GetUserTodos").
			Str("user_id", userID).
			Msg("failed to execute query for getting user todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Todo, 0, 20)

	for rows.Next() {
		var todo models.Todo

		scanErr := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Progress, &todo.Date)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "todoRepository.GetUserTodos").
				Str("user_id", userID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "todoRepository.GetUserTodos").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateTodo overwrites the mutable fields of an existing todo and returns
// the updated row.
//
// Returns [ErrTodoNotFound] when the targeted record does not exist.
func (r *todoRepository) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(todo)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.UpdateTodo").
			Str("todo_id", todo.ID).
			Msg("failed to build update query")
		return models.Todo{}, err
	}

	var updated models.Todo
	row := r.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&updated.ID, &updated.UserID, &updated.Title, &updated.Progress, &updated.Date); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "todoRepository.UpdateTodo").
				Str("todo_id", todo.ID).
				Msg("todo not found")
			return models.Todo{}, ErrTodoNotFound
		}

		log.Err(scanErr).
			Str("func", "todoRepository.UpdateTodo").
			Str("todo_id", todo.ID).
			Msg("failed to execute update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "todoRepository.UpdateTodo").
		Str("todo_id", updated.ID).
		Msg("successfully updated todo")

	return updated, nil
}

// DeleteTodo removes a todo by its identifier.
//
// Returns [ErrTodoNotFound] when no record was deleted.
func (r *todoRepository) DeleteTodo(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.DeleteTodo").
			Str("todo_id", id).
			Msg("failed to build delete query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.DeleteTodo").
			Str("todo_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "todoRepository.DeleteTodo").
			Str("todo_id", id).
			Msg("todo not found")
		return ErrTodoNotFound
	}

	return nil
}
