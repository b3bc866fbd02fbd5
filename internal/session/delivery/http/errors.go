package http

import (
	"errors"
	"net/http"

	"tasksync/internal/session"
	pkgErrors "tasksync/pkg/errors"
)

// mapError translates session errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrCredentialsRequired),
		errors.Is(err, session.ErrMalformedCredential),
		errors.Is(err, session.ErrRegistration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrAuthRejected):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "incorrect username or password")
	case errors.Is(err, session.ErrUnreachable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "backend unreachable")
	case errors.Is(err, session.ErrInvalidTransition):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
