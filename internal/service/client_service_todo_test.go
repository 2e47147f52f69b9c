package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/setayeshnri/to-do-app-pern-main/internal/adapter"
	"github.com/setayeshnri/to-do-app-pern-main/internal/app"
	"github.com/setayeshnri/to-do-app-pern-main/internal/mock"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// newTestClientTodoSvc builds a clientTodoService backed by a mock adapter.
func newTestClientTodoSvc(t *testing.T, ctrl *gomock.Controller) (*clientTodoService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientTodoService(mockAdapter).(*clientTodoService)
	return svc, mockAdapter
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestClientTodoService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	input := models.TodoInput{Title: "Buy groceries", Progress: 40}
	want := models.Todo{ID: "todo-1", UserID: "user-1", Title: input.Title, Progress: input.Progress}

	mockAdapter.EXPECT().CreateTodo(ctx, input).Return(want, nil)

	got, err := svc.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientTodoService_Create_TrimsTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateTodo(ctx, models.TodoInput{Title: "Walk the dog"}).
		Return(models.Todo{Title: "Walk the dog"}, nil)

	_, err := svc.Create(ctx, models.TodoInput{Title: "  Walk the dog  "})
	require.NoError(t, err)
}

func TestClientTodoService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   models.TodoInput
		wantErr error
	}{
		{name: "empty title", input: models.TodoInput{}, wantErr: ErrEmptyTitle},
		{name: "blank title", input: models.TodoInput{Title: "   "}, wantErr: ErrEmptyTitle},
		{name: "negative progress", input: models.TodoInput{Title: "x", Progress: -1}, wantErr: ErrInvalidProgress},
		{name: "progress above 100", input: models.TodoInput{Title: "x", Progress: 101}, wantErr: ErrInvalidProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestClientTodoService_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	want := models.Todo{ID: "todo-1", Title: "Buy groceries"}
	mockAdapter.EXPECT().GetTodo(ctx, "todo-1").Return(want, nil)

	got, err := svc.Get(ctx, "todo-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientTodoService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetTodo(ctx, "missing").
		Return(models.Todo{}, adapterError(adapter.ErrNotFound, app.MsgGetTodoFailed))

	_, err := svc.Get(ctx, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestClientTodoService_Get_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetTodo(ctx, "foreign").
		Return(models.Todo{}, adapterError(adapter.ErrForbidden, app.MsgGetTodoFailed))

	_, err := svc.Get(ctx, "foreign")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTodoOwner)
}

// ── GetAll ──────────────────────────────────────────────────────────────────

func TestClientTodoService_GetAll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Todo{
		{ID: "todo-2", Title: "Walk the dog"},
		{ID: "todo-1", Title: "Buy groceries"},
	}
	mockAdapter.EXPECT().GetUserTodos(ctx, "user-1").Return(want, nil)

	got, err := svc.GetAll(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientTodoService_GetAll_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetUserTodos(ctx, "user-1").
		Return(nil, adapterError(adapter.ErrUnauthorized, app.MsgTokenExpiredOrInvalid))

	_, err := svc.GetAll(ctx, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestClientTodoService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	input := models.TodoInput{Title: "Buy groceries", Progress: 100}
	want := models.Todo{ID: "todo-1", Title: input.Title, Progress: input.Progress}

	mockAdapter.EXPECT().UpdateTodo(ctx, "todo-1", input).Return(want, nil)

	got, err := svc.Update(ctx, "todo-1", input)

	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
}

func TestClientTodoService_Update_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientTodoSvc(t, ctrl)

	_, err := svc.Update(context.Background(), "todo-1", models.TodoInput{})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestClientTodoService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateTodo(ctx, "missing", gomock.Any()).
		Return(models.Todo{}, adapterError(adapter.ErrNotFound, app.MsgUpdateTodoFailed))

	_, err := svc.Update(ctx, "missing", models.TodoInput{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestClientTodoService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteTodo(ctx, "todo-1").Return(nil)

	assert.NoError(t, svc.Delete(ctx, "todo-1"))
}

func TestClientTodoService_Delete_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientTodoSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteTodo(ctx, "foreign").
		Return(adapterError(adapter.ErrForbidden, app.MsgDeleteTodoFailed))

	err := svc.Delete(ctx, "foreign")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTodoOwner)
}
