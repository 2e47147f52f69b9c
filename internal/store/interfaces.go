package store

import (
	"context"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetTodoByID(ctx context.Context, id string) (models.Todo, error)
	GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}
