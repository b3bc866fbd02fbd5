package http

import (
	"errors"
	"net/http"

	"tasksync/internal/task"
	pkgErrors "tasksync/pkg/errors"
)

// mapError translates task errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrUnauthorized):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "session expired, please sign in again")
	case errors.Is(err, task.ErrNetwork):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "backend unreachable, changes were reloaded")
	case errors.Is(err, task.ErrServer):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
