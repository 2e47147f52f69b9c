package http

import (
	"errors"
	"net/http"

	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/internal/store"
	"github.com/setayeshnri/to-do-app-pern-main/internal/utils"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptyTitle:              http.StatusBadRequest,
	service.ErrTitleTooLong:            http.StatusBadRequest,
	service.ErrInvalidProgress:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotTodoOwner:            http.StatusForbidden,

	store.ErrUsernameAlreadyTaken: http.StatusBadRequest,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrTodoNotFound:         http.StatusNotFound,
	store.ErrTodoNotSaved:         http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the JSON error envelope used by the public API.
// Client mistakes (4xx) report status "fail"; server faults report "error".
func writeError(w http.ResponseWriter, statusCode int, message string) {
	status := models.StatusFail
	if statusCode >= http.StatusInternalServerError {
		status = models.StatusError
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Status:  status,
		Message: message,
	}, statusCode)
}
