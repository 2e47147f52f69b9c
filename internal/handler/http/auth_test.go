// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// credentialsBody serialises models.Credentials to a JSON request body string.
func credentialsBody(t *testing.T, c models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validCredentials is a convenience fixture used across multiple tests.
var validCredentials = models.Credentials{
	Username: "alice",
	Password: "s3cr3t-password",
}

// ─────────────────────────────────────────────
// signup — success
// ─────────────────────────────────────────────

// TestSignup_Success verifies that a valid signup request results in 200 OK
// with the issued token, username and user id in the response body.
func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{ID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "user-1", resp.ID)
}

// ─────────────────────────────────────────────
// signup — invalid JSON
// ─────────────────────────────────────────────

// TestSignup_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestSignup_EmptyBody verifies that an empty request body results in
// 400 Bad Request.
func TestSignup_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// signup — RegisterUser errors
// ─────────────────────────────────────────────

// TestSignup_RegisterUserErrors verifies the mapping from registration
// failures to HTTP status codes and response messages.
func TestSignup_RegisterUserErrors(t *testing.T) {
	tests := []struct {
		name        string
		registerErr error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing credentials",
			registerErr: service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username and password are required",
		},
		{
			name:        "username taken",
			registerErr: store.ErrUsernameAlreadyTaken,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username is already taken",
		},
		{
			name:        "unexpected repository error",
			registerErr: errors.New("db connection lost"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					return models.User{}, tt.registerErr
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// TestSignup_TokenCreationError verifies that a token issuance failure after
// a successful registration results in 500 Internal Server Error.
func TestSignup_TokenCreationError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{ID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login — success
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials result in 200 OK with
// the issued token and the user projection in the response body.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{ID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)
}

// ─────────────────────────────────────────────
// login — errors
// ─────────────────────────────────────────────

// TestLogin_Errors verifies the mapping from login failures to HTTP status
// codes. Unknown usernames produce 404 while wrong passwords produce 401;
// both carry the same message so the response does not reveal which part of
// the credentials was wrong.
func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		loginErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing credentials",
			loginErr:    service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username and password are required",
		},
		{
			name:        "unknown username",
			loginErr:    store.ErrNoUserWasFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "wrong password",
			loginErr:    service.ErrWrongPassword,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid username or password",
		},
		{
			name:        "unexpected repository error",
			loginErr:    errors.New("db connection lost"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to log in user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}

			h := newHandlerWithAuth(t, auth)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not-json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_TokenCreationError verifies that a token issuance failure after
// a successful login results in 500 Internal Server Error.
func TestLogin_TokenCreationError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, c models.Credentials) (models.User, error) {
			return models.User{ID: "user-1", Username: c.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(t, validCredentials)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
