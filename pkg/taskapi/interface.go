package taskapi

import "context"

// ITaskAPI is the backend surface consumed by the client.
// Implementations are safe for concurrent use.
type ITaskAPI interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Probe(ctx context.Context, token string, limit int) error

	ListTasks(ctx context.Context, token string, opt ListOptions) ([]Task, error)
	SearchTasks(ctx context.Context, token, term string) ([]Task, error)
	CreateTask(ctx context.Context, token string, req CreateTaskRequest) (*Task, error)
	UpdateTask(ctx context.Context, token, id string, req UpdateTaskRequest) (*Task, error)
	CompleteTask(ctx context.Context, token, id string) (*Task, error)
	ReopenTask(ctx context.Context, token, id string) (*Task, error)
	DeleteTask(ctx context.Context, token, id string) error
}

var _ ITaskAPI = (*Client)(nil)
