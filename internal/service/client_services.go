package service

import (
	"github.com/setayeshnri/to-do-app-pern-main/internal/adapter"
)

type ClientServices struct {
	AuthService ClientAuthService
	TodoService ClientTodoService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter),
		TodoService: NewClientTodoService(serverAdapter),
	}
}
