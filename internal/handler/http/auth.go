package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/setayeshnri/to-do-app-pern-main/internal/app"
	"github.com/setayeshnri/to-do-app-pern-main/internal/logger"
	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, app.MsgCredentialsRequired)
			return
		case errors.Is(err, store.ErrUsernameAlreadyTaken):
			log.Err(err).Msg("username is already taken")
			writeError(w, http.StatusBadRequest, app.MsgUsernameTaken)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusInternalServerError, app.MsgSignupFailed)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, app.MsgSignupFailed)
		return
	}

	utils.WriteJSON(w, models.SignupResponse{
		Status:   models.StatusSuccess,
		Message:  app.MsgAccountCreated,
		Token:    token.SignedString,
		Username: registeredUser.Username,
		ID:       registeredUser.ID,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, app.MsgCredentialsRequired)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Msg("no user was found")
			writeError(w, http.StatusNotFound, app.MsgInvalidCredentials)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			writeError(w, http.StatusUnauthorized, app.MsgInvalidCredentials)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusInternalServerError, app.MsgLoginFailed)
			return
		}
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, http.StatusInternalServerError, app.MsgLoginFailed)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		Status:  models.StatusSuccess,
		Message: app.MsgLoginSuccess,
		Token:   token.SignedString,
		User: models.UserInfo{
			ID:       foundUser.ID,
			Username: foundUser.Username,
		},
	}, http.StatusOK)
}
