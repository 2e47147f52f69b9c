package service

import (
	"errors"

	"github.com/setayeshnri/to-do-app-pern-main/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// Validation failures surface under the validators sentinels so callers
	// can match them without importing a second package.
	ErrEmptyTitle      = validators.ErrEmptyTitle
	ErrTitleTooLong    = validators.ErrTitleTooLong
	ErrInvalidProgress = validators.ErrInvalidProgress

	ErrNotTodoOwner = errors.New("todo belongs to another user")
)
