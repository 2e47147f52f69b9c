package service

import (
	"context"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type TodoService interface {
	CreateTodo(ctx context.Context, userID string, input models.TodoInput) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error)
	GetUserTodos(ctx context.Context, requesterID, ownerID string) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID string, input models.TodoInput) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID string) error
}
