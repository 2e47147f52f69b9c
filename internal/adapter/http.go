package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/setayeshnri/to-do-app-pern-main/internal/config"
	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the token currently held by
// the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/signup. On success the token is taken from the response
// body and stored via SetToken. Returns an error if the request fails or the
// server returns a non-2xx status.
func (h *httpServerAdapter) Signup(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var signupResponse models.SignupResponse
	if err = json.Unmarshal(resp.Body(), &signupResponse); err != nil {
		return models.User{}, fmt.Errorf("decode signup response: %w", err)
	}

	h.SetToken(signupResponse.Token)
	return models.User{ID: signupResponse.ID, Username: signupResponse.Username}, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the token is taken from the response body
// and stored via SetToken. Returns an error if the request fails or the
// server returns a non-2xx status.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var loginResponse models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResponse); err != nil {
		return models.User{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(loginResponse.Token)
	return models.User{ID: loginResponse.User.ID, Username: loginResponse.User.Username}, nil
}

// CreateTodo implements [ServerAdapter].
func (h *httpServerAdapter) CreateTodo(ctx context.Context, input models.TodoInput) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Post("/api/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todoResponse models.TodoResponse
	if err = json.Unmarshal(resp.Body(), &todoResponse); err != nil {
		return models.Todo{}, fmt.Errorf("decode create todo response: %w", err)
	}

	return todoResponse.Data.Todo, nil
}

// GetTodo implements [ServerAdapter].
func (h *httpServerAdapter) GetTodo(ctx context.Context, todoID string) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get("/api/todos/" + todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todoResponse models.TodoResponse
	if err = json.Unmarshal(resp.Body(), &todoResponse); err != nil {
		return models.Todo{}, fmt.Errorf("decode get todo response: %w", err)
	}

	return todoResponse.Data.Todo, nil
}

// GetUserTodos implements [ServerAdapter].
func (h *httpServerAdapter) GetUserTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	resp, err := h.authedRequest(ctx).Get("/api/todos/users/" + userID)
	if err != nil {
		return nil, fmt.Errorf("get user todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var listResponse models.TodoListResponse
	if err = json.Unmarshal(resp.Body(), &listResponse); err != nil {
		return nil, fmt.Errorf("decode user todos response: %w", err)
	}

	return listResponse.Data.Todos, nil
}

// UpdateTodo implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTodo(ctx context.Context, todoID string, input models.TodoInput) (models.Todo, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		Patch("/api/todos/" + todoID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("update todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	var todoResponse models.TodoResponse
	if err = json.Unmarshal(resp.Body(), &todoResponse); err != nil {
		return models.Todo{}, fmt.Errorf("decode update todo response: %w", err)
	}

	return todoResponse.Data.Todo, nil
}

// DeleteTodo implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTodo(ctx context.Context, todoID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/todos/" + todoID)
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", h.token)
	}
	return req
}
