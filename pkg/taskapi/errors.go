package taskapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("credential rejected by backend")
	ErrNotFound     = errors.New("resource not found")
	ErrBadRequest   = errors.New("request rejected by backend")
	ErrServer       = errors.New("backend server error")
	ErrNetwork      = errors.New("backend unreachable")
	ErrEmptyBody    = errors.New("empty response body")
)

// StatusError is returned for every non-2xx backend response.
type StatusError struct {
	Op     string
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("taskapi %s: status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("taskapi %s: status %d: %s", e.Op, e.Code, e.Detail)
}

// Is maps the status code onto the package sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrBadRequest:
		return e.Code >= 400 && e.Code < 500 &&
			e.Code != http.StatusUnauthorized && e.Code != http.StatusForbidden && e.Code != http.StatusNotFound
	case ErrServer:
		return e.Code >= 500 || e.Code < 400
	}
	return false
}

// NetworkError wraps transport-level failures, client timeouts included.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("taskapi %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
