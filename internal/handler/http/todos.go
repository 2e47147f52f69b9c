// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Setayesh Nri

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/setayeshnri/to-do-app-pern-main/internal/app"
	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, http.StatusUnauthorized, app.MsgAuthRequired)
		return
	}

	var input models.TodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	createdTodo, err := h.services.TodoService.CreateTodo(ctx, userID, input)
	if err != nil {
		log.Err(err).Msg("todo creation failed")
		writeError(w, statusFromError(err), app.MsgCreateTodoFailed)
		return
	}

	utils.WriteJSON(w, models.TodoResponse{
		Status:  models.StatusSuccess,
		Message: app.MsgTodoCreated,
		Data:    models.TodoData{Todo: createdTodo},
	}, http.StatusCreated)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, http.StatusUnauthorized, app.MsgAuthRequired)
		return
	}

	todoID := chi.URLParam(r, "id")
	foundTodo, err := h.services.TodoService.GetTodo(ctx, userID, todoID)
	if err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo lookup failed")
		writeError(w, statusFromError(err), app.MsgGetTodoFailed)
		return
	}

	utils.WriteJSON(w, models.TodoResponse{
		Status: models.StatusSuccess,
		Data:   models.TodoData{Todo: foundTodo},
	}, http.StatusOK)
}

func (h *Handler) getUserTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requesterID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, http.StatusUnauthorized, app.MsgAuthRequired)
		return
	}

	ownerID := chi.URLParam(r, "id")
	todos, err := h.services.TodoService.GetUserTodos(ctx, requesterID, ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("todo list failed")
		writeError(w, statusFromError(err), app.MsgListTodosFailed)
		return
	}

	utils.WriteJSON(w, models.TodoListResponse{
		Status: models.StatusSuccess,
		Result: len(todos),
		Data:   models.TodoListData{Todos: todos},
	}, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, http.StatusUnauthorized, app.MsgAuthRequired)
		return
	}

	var input models.TodoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	todoID := chi.URLParam(r, "id")
	updatedTodo, err := h.services.TodoService.UpdateTodo(ctx, userID, todoID, input)
	if err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo update failed")
		writeError(w, statusFromError(err), app.MsgUpdateTodoFailed)
		return
	}

	utils.WriteJSON(w, models.TodoResponse{
		Status:  models.StatusSuccess,
		Message: app.MsgTodoUpdated,
		Data:    models.TodoData{Todo: updatedTodo},
	}, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		writeError(w, http.StatusUnauthorized, app.MsgAuthRequired)
		return
	}

	todoID := chi.URLParam(r, "id")
	if err := h.services.TodoService.DeleteTodo(ctx, userID, todoID); err != nil {
		log.Err(err).Str("todo_id", todoID).Msg("todo deletion failed")
		writeError(w, statusFromError(err), app.MsgDeleteTodoFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  models.StatusSuccess,
		Message: app.MsgTodoDeleted,
	}, http.StatusOK)
}
