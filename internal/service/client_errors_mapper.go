// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/setayeshnri/to-do-app-pern-main/internal/adapter"
	"github.com/setayeshnri/to-do-app-pern-main/internal/app"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgCredentialsRequired, app.MsgInvalidJSON:
			return ErrInvalidDataProvided
		case app.MsgUsernameTaken:
			return store.ErrUsernameAlreadyTaken
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgTokenExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrNotTodoOwner

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgInvalidCredentials {
			return store.ErrNoUserWasFound
		}
		return store.ErrTodoNotFound
	}

	return err
}

// extractMessage pulls the server-side message out of a transport error of
// the form "bad request: {\"status\":\"fail\",\"message\":\"...\"}". Plain
// text bodies are returned as-is.
func extractMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var envelope models.ErrorResponse
	if jsonErr := json.Unmarshal([]byte(msg), &envelope); jsonErr == nil && envelope.Message != "" {
		return envelope.Message
	}

	return msg
}
