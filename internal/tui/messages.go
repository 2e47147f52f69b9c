package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// NavigateTo asks the root model to switch to another page. Payload, when
// non-nil, is delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the async login command. On success the root
// model stores the user and ends the authentication flow.
type LoginResult struct {
	Err  error
	User models.User
}

// SignupResult is produced by the async signup command.
type SignupResult struct {
	Err      error
	Username string
}

// SignupSuccessNotice is passed back to the menu page after a successful
// signup so it can show a confirmation line.
type SignupSuccessNotice struct {
	Username string
}

type listLoadedMsg struct {
	todos []models.Todo
	err   error
}

type todoSavedMsg struct {
	err error
}

type todoDeletedMsg struct {
	err error
}
