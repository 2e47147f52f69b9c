// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

// Package app contains shared application-layer constants used across the
// todo server handlers and the client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording throughout
// the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgCredentialsRequired is returned when the username or password field
	// is missing or blank.
	MsgCredentialsRequired = "Username and password are required"

	// MsgUsernameTaken is returned when a signup attempt is rejected because
	// the requested username is already in use.
	MsgUsernameTaken = "Username is already taken"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password so the response does not reveal which part of the
	// credentials was wrong.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgSignupFailed is returned when the signup handler encounters an
	// unexpected error that prevents account creation.
	MsgSignupFailed = "Failed to create account"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "Failed to log in user"

	// MsgAccountCreated is the success message of the signup endpoint.
	MsgAccountCreated = "account created"

	// MsgLoginSuccess is the success message of the login endpoint.
	MsgLoginSuccess = "login success"

	// MsgAuthRequired is returned when a protected handler is reached
	// without an authenticated user in the request context.
	MsgAuthRequired = "Authentication required"

	// MsgTokenExpiredOrInvalid is returned when a JWT token is either
	// expired or cannot be verified (e.g. wrong signature or issuer).
	MsgTokenExpiredOrInvalid = "Token is expired or invalid"

	// MsgTodoCreated is the success message of the create endpoint.
	MsgTodoCreated = "Todo created"

	// MsgTodoUpdated is the success message of the update endpoint.
	MsgTodoUpdated = "Todo updated"

	// MsgTodoDeleted is the success message of the delete endpoint.
	MsgTodoDeleted = "Todo deleted"

	// MsgCreateTodoFailed is returned when the create endpoint fails.
	MsgCreateTodoFailed = "Failed to create todo"

	// MsgGetTodoFailed is returned when a single-task lookup fails. It is
	// used for missing tasks, foreign tasks, and storage failures alike; the
	// status code carries the distinction.
	MsgGetTodoFailed = "Failed to get todo"

	// MsgListTodosFailed is returned when the per-user listing fails.
	MsgListTodosFailed = "Failed to list todos"

	// MsgUpdateTodoFailed is returned when the update endpoint fails.
	MsgUpdateTodoFailed = "Failed to update todo"

	// MsgDeleteTodoFailed is returned when the delete endpoint fails.
	MsgDeleteTodoFailed = "Failed to delete todo"
)
