package client

import (
	"context"
	"errors"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/internal/tui"
)

// App is the terminal client application.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: services are required")
	}
	if ui == nil {
		return nil, errors.New("client: tui is required")
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives the client lifecycle: authenticate, then work with the
// todo list until the user logs out or quits. Logging out returns the
// user to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("username", user.Username).Msg("user logged out")
	}
}
