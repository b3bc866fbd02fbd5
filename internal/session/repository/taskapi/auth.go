package taskapi

import (
	"context"
	"errors"
	"fmt"

	"tasksync/internal/model"
	"tasksync/internal/session/repository"
	pkgLog "tasksync/pkg/log"
	"tasksync/pkg/taskapi"
)

type implRepository struct {
	client     taskapi.ITaskAPI
	probeLimit int
	l          pkgLog.Logger
}

// New creates an Authenticator backed by the task backend API.
func New(client taskapi.ITaskAPI, probeLimit int, l pkgLog.Logger) repository.Authenticator {
	return &implRepository{
		client:     client,
		probeLimit: probeLimit,
		l:          l,
	}
}

func (r *implRepository) Login(ctx context.Context, username, password string) (model.Credential, error) {
	token, err := r.client.Login(ctx, username, password)
	if err != nil {
		return "", r.mapError(ctx, "login", err)
	}
	return model.Credential(token), nil
}

func (r *implRepository) Register(ctx context.Context, username, password string) error {
	if _, err := r.client.Register(ctx, username, password); err != nil {
		return r.mapError(ctx, "register", err)
	}
	return nil
}

func (r *implRepository) Probe(ctx context.Context, cred model.Credential) error {
	if err := r.client.Probe(ctx, cred.String(), r.probeLimit); err != nil {
		return r.mapError(ctx, "probe", err)
	}
	return nil
}

// mapError translates backend errors into session repository errors.
// Anything that is not an explicit rejection counts as unreachable.
func (r *implRepository) mapError(ctx context.Context, op string, err error) error {
	var se *taskapi.StatusError
	switch {
	case errors.Is(err, taskapi.ErrUnauthorized):
		return fmt.Errorf("%w: %v", repository.ErrRejected, err)
	case errors.Is(err, taskapi.ErrBadRequest) && errors.As(err, &se):
		return fmt.Errorf("%w: %s", repository.ErrBadRequest, se.Detail)
	default:
		r.l.Warnf(ctx, "session backend %s failed: %v", op, err)
		return fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}
}
