package service

import (
	"context"
	"strings"

	"github.com/setayeshnri/to-do-app-pern-main/internal/adapter"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type clientTodoService struct {
	adapter adapter.ServerAdapter
}

func NewClientTodoService(serverAdapter adapter.ServerAdapter) ClientTodoService {
	return &clientTodoService{adapter: serverAdapter}
}

func (t *clientTodoService) Create(ctx context.Context, input models.TodoInput) (models.Todo, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return models.Todo{}, ErrEmptyTitle
	}
	if input.Progress < 0 || input.Progress > 100 {
		return models.Todo{}, ErrInvalidProgress
	}

	createdTodo, err := t.adapter.CreateTodo(ctx, input)
	if err != nil {
		return models.Todo{}, mapAdapterError(err)
	}

	return createdTodo, nil
}

func (t *clientTodoService) Get(ctx context.Context, todoID string) (models.Todo, error) {
	foundTodo, err := t.adapter.GetTodo(ctx, todoID)
	if err != nil {
		return models.Todo{}, mapAdapterError(err)
	}

	return foundTodo, nil
}

func (t *clientTodoService) GetAll(ctx context.Context, userID string) ([]models.Todo, error) {
	todos, err := t.adapter.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return todos, nil
}

func (t *clientTodoService) Update(ctx context.Context, todoID string, input models.TodoInput) (models.Todo, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return models.Todo{}, ErrEmptyTitle
	}
	if input.Progress < 0 || input.Progress > 100 {
		return models.Todo{}, ErrInvalidProgress
	}

	updatedTodo, err := t.adapter.UpdateTodo(ctx, todoID, input)
	if err != nil {
		return models.Todo{}, mapAdapterError(err)
	}

	return updatedTodo, nil
}

func (t *clientTodoService) Delete(ctx context.Context, todoID string) error {
	if err := t.adapter.DeleteTodo(ctx, todoID); err != nil {
		return mapAdapterError(err)
	}

	return nil
}
