package repository

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("backend rejected the credential")
	ErrNotFound     = errors.New("task not found")
	ErrConflict     = errors.New("backend rejected the request")
	ErrServer       = errors.New("backend server error")
	ErrNetwork      = errors.New("backend unreachable")
)

// StatusError carries the backend status and detail message. It unwraps to
// one of the package sentinels.
type StatusError struct {
	Code   int
	Detail string
	Err    error
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (status %d)", e.Err, e.Code)
	}
	return fmt.Sprintf("%v (status %d): %s", e.Err, e.Code, e.Detail)
}

func (e *StatusError) Unwrap() error { return e.Err }
