package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// ---- Helper ----

// newTestRouter builds the full router with permissive service mocks so that
// routing behaviour can be exercised end to end.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: "user-1"}, nil
			},
		},
		TodoService: &mockTodoService{
			createTodoFn: func(_ context.Context, _ string, _ models.TodoInput) (models.Todo, error) {
				return models.Todo{}, nil
			},
			getTodoFn: func(_ context.Context, _, _ string) (models.Todo, error) {
				return models.Todo{}, nil
			},
			getUserTodosFn: func(_ context.Context, _, _ string) ([]models.Todo, error) {
				return nil, nil
			},
			updateTodoFn: func(_ context.Context, _, _ string, _ models.TodoInput) (models.Todo, error) {
				return models.Todo{}, nil
			},
			deleteTodoFn: func(_ context.Context, _, _ string) error {
				return nil
			},
		},
	}, logger.Nop())
	return h.Init()
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/signup"},
		{http.MethodPost, "/api/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"public route must not require auth: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/todos"},
		{http.MethodGet, "/api/todos/abc"},
		{http.MethodPatch, "/api/todos/abc"},
		{http.MethodDelete, "/api/todos/abc"},
		{http.MethodGet, "/api/todos/users/user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"protected route must reject unauthenticated requests: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: reachable with token ----

func TestInit_ProtectedRoutes_WithToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/todos/abc", ""},
		{http.MethodDelete, "/api/todos/abc", ""},
		{http.MethodGet, "/api/todos/users/user-1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", "stub-token")
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// ---- Unregistered methods respond 404 ----

func TestInit_UnregisteredMethodsReturn404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/signup"},
		{http.MethodDelete, "/api/auth/login"},
		{http.MethodPut, "/api/todos"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code,
				"unregistered method should be hidden: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Unknown paths respond 404 ----

func TestInit_UnknownPath(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
