package validators

import (
	"context"

	"github.com/setayeshnri/to-do-app-pern-main/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the username of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the password of a credentials pair.
	FieldPassword = "password"

	// FieldTitle targets the title of a todo record.
	FieldTitle = "title"

	// FieldProgress targets the completion percentage of a todo record.
	FieldProgress = "progress"
)

// maxTitleLength bounds todo titles to the width of the database column.
const maxTitleLength = 255

type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.TodoInput:
		return v.validateTodoInput(ctx, value, fields...)
	case *models.TodoInput:
		return v.validateTodoInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *InputValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InputValidator) validateTodoInput(_ context.Context, input models.TodoInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldProgress}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if input.Title == "" {
				return ErrEmptyTitle
			}
			if len(input.Title) > maxTitleLength {
				return ErrTitleTooLong
			}
		case FieldProgress:
			if input.Progress < 0 || input.Progress > 100 {
				return ErrInvalidProgress
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
