package task

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the task package.
var (
	ErrUnauthorized = errors.New("session is not verified")
	ErrValidation   = errors.New("validation failed")
	ErrNetwork      = errors.New("backend unreachable")
	ErrServer       = errors.New("backend error")

	ErrTitleRequired       = fmt.Errorf("%w: title is required", ErrValidation)
	ErrDescriptionRequired = fmt.Errorf("%w: description is required", ErrValidation)
	ErrNoFields            = fmt.Errorf("%w: nothing to update", ErrValidation)
)
