package service

import (
	"context"
	"strings"

	"github.com/setayeshnri/to-do-app-pern-main/internal/adapter"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	createdUser, err := a.adapter.Signup(ctx, credentials)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return createdUser, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	credentials.Username = strings.TrimSpace(credentials.Username)
	if credentials.Username == "" || credentials.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return foundUser, nil
}
