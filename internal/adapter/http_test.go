// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setayeshnri/to-do-app-pern-main/internal/config"
	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "spaces only", address: "   "},
		{name: "scheme without host", address: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestNewHTTPServerAdapter_SchemeAdded(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "localhost:5001"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a)
}

// ── Signup ──────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.SignupResponse{
			Status:   models.StatusSuccess,
			Token:    "signed.jwt.token",
			Username: "alice",
			ID:       "user-1",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Signup(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestSignup_UsernameTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Username is already taken"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Username is already taken")
}

func TestSignup_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			Status: models.StatusSuccess,
			Token:  "signed.jwt.token",
			User:   models.UserInfo{ID: "user-1", Username: "alice"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Invalid username or password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_UnknownUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Invalid username or password"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "nobody", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── CreateTodo ──────────────────────────────────────────────────────────────

func TestCreateTodo_TokenAttached(t *testing.T) {
	want := models.Todo{ID: "todo-1", UserID: "user-1", Title: "Buy groceries", Progress: 40}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		assert.Equal(t, "signed.jwt.token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.TodoResponse{
			Status: models.StatusSuccess,
			Data:   models.TodoData{Todo: want},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	got, err := a.CreateTodo(context.Background(), models.TodoInput{Title: want.Title, Progress: want.Progress})

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
}

func TestCreateTodo_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"fail","message":"empty authorization header"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTodo(context.Background(), models.TodoInput{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetTodo ─────────────────────────────────────────────────────────────────

func TestGetTodo_Success(t *testing.T) {
	want := models.Todo{ID: "todo-1", UserID: "user-1", Title: "Buy groceries"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/todos/todo-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TodoResponse{
			Status: models.StatusSuccess,
			Data:   models.TodoData{Todo: want},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	got, err := a.GetTodo(context.Background(), "todo-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Failed to get todo"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	_, err := a.GetTodo(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTodo_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Failed to get todo"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	_, err := a.GetTodo(context.Background(), "foreign")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── GetUserTodos ────────────────────────────────────────────────────────────

func TestGetUserTodos_Success(t *testing.T) {
	want := []models.Todo{
		{ID: "todo-2", UserID: "user-1", Title: "Walk the dog"},
		{ID: "todo-1", UserID: "user-1", Title: "Buy groceries"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/todos/users/user-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TodoListResponse{
			Status: models.StatusSuccess,
			Result: len(want),
			Data:   models.TodoListData{Todos: want},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	got, err := a.GetUserTodos(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── UpdateTodo ──────────────────────────────────────────────────────────────

func TestUpdateTodo_Success(t *testing.T) {
	want := models.Todo{ID: "todo-1", UserID: "user-1", Title: "Buy groceries", Progress: 100}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/todos/todo-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.TodoResponse{
			Status: models.StatusSuccess,
			Data:   models.TodoData{Todo: want},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	got, err := a.UpdateTodo(context.Background(), "todo-1", models.TodoInput{Title: want.Title, Progress: want.Progress})

	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
}

// ── DeleteTodo ──────────────────────────────────────────────────────────────

func TestDeleteTodo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/todo-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"success","message":"Todo deleted"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	err := a.DeleteTodo(context.Background(), "todo-1")
	assert.NoError(t, err)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"fail","message":"Failed to delete todo"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("signed.jwt.token")

	err := a.DeleteTodo(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
