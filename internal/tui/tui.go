// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

// Package tui contains the terminal interface of the todo client.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// ErrUserQuit is returned when the user closes the interface on purpose.
var ErrUserQuit = errors.New("user quit")

// TUI wires the terminal pages to the client services.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: client services are required")
	}

	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the menu/login/signup pages until the user
// is authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")

	program := tea.NewProgram(root, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return models.User{}, fmt.Errorf("login flow failed: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, errors.New("login flow returned an unexpected model")
	}

	if result.quitByUser || result.resultUser.ID == "" {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("username", result.resultUser.Username).Msg("user logged in")
	return result.resultUser, nil
}

// MainLoop runs the todo list screen for an authenticated user.
// It reports whether the user chose to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (bool, error) {
	model := newMainLoopModel(ctx, t.services, user)

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("main loop failed: %w", err)
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, errors.New("main loop returned an unexpected model")
	}

	return result.logout, nil
}
