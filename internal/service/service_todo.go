// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
	"github.com/setayeshnri/to-do-app-pern-main/internal/validators"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// todoService is the concrete implementation of TodoService.
// Every operation on an existing record loads it first and verifies that the
// caller owns it before acting; the ownership check is a hard gate, not a
// filter, so a foreign record produces ErrNotTodoOwner rather than an empty
// result.
type todoService struct {
	todoRepository store.TodoRepository
	idGenerator    *utils.UUIDGenerator
	validator      validators.Validator
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		validator:      validators.NewInputValidator(),
		logger:         logger,
	}
}

// CreateTodo validates the input and persists a new todo owned by userID.
//
// The title is trimmed before validation. A zero date defaults to the current
// time so records always sort deterministically in listings.
func (s *todoService) CreateTodo(ctx context.Context, userID string, input models.TodoInput) (models.Todo, error) {
	log := logger.FromContext(ctx)

	input.Title = strings.TrimSpace(input.Title)
	if err := s.validator.Validate(ctx, input); err != nil {
		log.Error().Str("user_id", userID).Str("title", input.Title).Msg("invalid todo input")
		return models.Todo{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	todo := models.Todo{
		ID:       s.idGenerator.Generate(),
		UserID:   userID,
		Title:    input.Title,
		Progress: input.Progress,
		Date:     date,
	}

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return created, nil
}

// GetTodo returns a single todo owned by userID.
//
// Missing records surface as store.ErrTodoNotFound before any ownership
// check, so a caller probing foreign ids cannot distinguish "absent" from
// "not yours" by the order of failures.
func (s *todoService) GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	todo, err := s.loadOwnedTodo(ctx, userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// GetUserTodos lists all todos of ownerID, newest first.
//
// The requester may only list their own records; asking for another user's
// list fails with ErrNotTodoOwner regardless of whether that user exists.
func (s *todoService) GetUserTodos(ctx context.Context, requesterID, ownerID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	if requesterID != ownerID {
		log.Warn().
			Str("requester_id", requesterID).
			Str("owner_id", ownerID).
			Msg("attempt to list another user's todos")
		return nil, ErrNotTodoOwner
	}

	todos, err := s.todoRepository.GetUserTodos(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("user_id", ownerID).Msg("listing todos ended with error")
		return nil, fmt.Errorf("listing todos ended with error: %w", err)
	}

	return todos, nil
}

// UpdateTodo overwrites the mutable fields of an existing todo owned by userID
// and returns the updated record.
func (s *todoService) UpdateTodo(ctx context.Context, userID, todoID string, input models.TodoInput) (models.Todo, error) {
	log := logger.FromContext(ctx)

	current, err := s.loadOwnedTodo(ctx, userID, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if err = s.validator.Validate(ctx, input); err != nil {
		log.Error().Str("todo_id", todoID).Str("title", input.Title).Msg("invalid todo input")
		return models.Todo{}, err
	}

	current.Title = input.Title
	current.Progress = input.Progress
	if !input.Date.IsZero() {
		current.Date = input.Date
	}

	updated, err := s.todoRepository.UpdateTodo(ctx, current)
	if err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo update ended with error")
		return models.Todo{}, fmt.Errorf("todo update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTodo removes an existing todo owned by userID.
func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.loadOwnedTodo(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.todoRepository.DeleteTodo(ctx, todoID); err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo deletion ended with error")
		return fmt.Errorf("todo deletion ended with error: %w", err)
	}

	return nil
}

// loadOwnedTodo fetches a todo and verifies ownership.
// The existence check runs first so not-found wins over forbidden.
func (s *todoService) loadOwnedTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	todo, err := s.todoRepository.GetTodoByID(ctx, todoID)
	if err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo lookup ended with error")
		return models.Todo{}, fmt.Errorf("todo lookup ended with error: %w", err)
	}

	if todo.UserID != userID {
		log.Warn().
			Str("todo_id", todoID).
			Str("owner_id", todo.UserID).
			Str("requester_id", userID).
			Msg("todo belongs to another user")
		return models.Todo{}, ErrNotTodoOwner
	}

	return todo, nil
}
