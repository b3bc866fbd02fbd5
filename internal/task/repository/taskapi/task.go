package taskapi

import (
	"context"
	"errors"
	"fmt"

	"tasksync/internal/model"
	"tasksync/internal/task/repository"
	pkgLog "tasksync/pkg/log"
	"tasksync/pkg/taskapi"
)

type implRepository struct {
	client taskapi.ITaskAPI
	l      pkgLog.Logger
}

// New creates a task repository backed by the task backend API.
func New(client taskapi.ITaskAPI, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) List(ctx context.Context, cred model.Credential, opt repository.ListOptions) ([]model.Task, error) {
	tasks, err := r.client.ListTasks(ctx, cred.String(), taskapi.ListOptions{
		Status: string(opt.Status),
	})
	if err != nil {
		return nil, r.mapError(ctx, "list", err)
	}
	return toModels(tasks), nil
}

func (r *implRepository) Search(ctx context.Context, cred model.Credential, opt repository.SearchOptions) ([]model.Task, error) {
	tasks, err := r.client.SearchTasks(ctx, cred.String(), opt.Term)
	if err != nil {
		return nil, r.mapError(ctx, "search", err)
	}
	return toModels(tasks), nil
}

func (r *implRepository) Create(ctx context.Context, cred model.Credential, opt repository.CreateOptions) (model.Task, error) {
	t, err := r.client.CreateTask(ctx, cred.String(), taskapi.CreateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
	})
	if err != nil {
		return model.Task{}, r.mapError(ctx, "create", err)
	}
	return toModel(*t), nil
}

func (r *implRepository) Update(ctx context.Context, cred model.Credential, id model.TaskID, opt repository.UpdateOptions) (model.Task, error) {
	t, err := r.client.UpdateTask(ctx, cred.String(), id.String(), taskapi.UpdateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
	})
	if err != nil {
		return model.Task{}, r.mapError(ctx, "update", err)
	}
	return toModel(*t), nil
}

func (r *implRepository) SetStatus(ctx context.Context, cred model.Credential, id model.TaskID, status model.TaskStatus) (*model.Task, error) {
	var (
		t   *taskapi.Task
		err error
	)
	switch status {
	case model.TaskStatusCompleted:
		t, err = r.client.CompleteTask(ctx, cred.String(), id.String())
	case model.TaskStatusPending:
		t, err = r.client.ReopenTask(ctx, cred.String(), id.String())
	default:
		return nil, fmt.Errorf("%w: unknown status %q", repository.ErrConflict, status)
	}
	if err != nil {
		return nil, r.mapError(ctx, "set status", err)
	}
	if t == nil {
		return nil, nil
	}
	m := toModel(*t)
	return &m, nil
}

func (r *implRepository) Delete(ctx context.Context, cred model.Credential, id model.TaskID) error {
	if err := r.client.DeleteTask(ctx, cred.String(), id.String()); err != nil {
		return r.mapError(ctx, "delete", err)
	}
	return nil
}

// mapError translates backend errors into repository errors, keeping the
// status and detail when there is one.
func (r *implRepository) mapError(ctx context.Context, op string, err error) error {
	var kind error
	switch {
	case errors.Is(err, taskapi.ErrNetwork):
		r.l.Warnf(ctx, "task repository: %s: %v", op, err)
		return fmt.Errorf("%w: %v", repository.ErrNetwork, err)
	case errors.Is(err, taskapi.ErrUnauthorized):
		kind = repository.ErrUnauthorized
	case errors.Is(err, taskapi.ErrNotFound):
		kind = repository.ErrNotFound
	case errors.Is(err, taskapi.ErrBadRequest):
		kind = repository.ErrConflict
	default:
		kind = repository.ErrServer
	}

	var se *taskapi.StatusError
	if errors.As(err, &se) {
		return &repository.StatusError{Code: se.Code, Detail: se.Detail, Err: kind}
	}
	r.l.Errorf(ctx, "task repository: %s: %v", op, err)
	return fmt.Errorf("%w: %v", kind, err)
}
