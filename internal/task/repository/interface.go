package repository

import (
	"context"

	"tasksync/internal/model"
)

// Repository is the remote task store. Every call is authenticated with cred.
type Repository interface {
	List(ctx context.Context, cred model.Credential, opt ListOptions) ([]model.Task, error)
	Search(ctx context.Context, cred model.Credential, opt SearchOptions) ([]model.Task, error)
	Create(ctx context.Context, cred model.Credential, opt CreateOptions) (model.Task, error)
	Update(ctx context.Context, cred model.Credential, id model.TaskID, opt UpdateOptions) (model.Task, error)
	// SetStatus returns nil when the backend acknowledges without a body.
	SetStatus(ctx context.Context, cred model.Credential, id model.TaskID, status model.TaskStatus) (*model.Task, error)
	Delete(ctx context.Context, cred model.Credential, id model.TaskID) error
}
