package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")

	ErrEmptyTitle      = errors.New("todo title must not be empty")
	ErrTitleTooLong    = errors.New("todo title is too long")
	ErrInvalidProgress = errors.New("todo progress must be between 0 and 100")
)
