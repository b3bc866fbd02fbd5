package repository

import "tasksync/internal/model"

// ListOptions holds the parameters for listing tasks.
type ListOptions struct {
	Status model.TaskStatus // empty for all statuses
}

// SearchOptions holds the parameters for a server-side search.
type SearchOptions struct {
	Term string
}

// CreateOptions holds the parameters for creating a task.
type CreateOptions struct {
	Title       string
	Description string
}

// UpdateOptions holds a partial edit. Nil fields are not sent.
type UpdateOptions struct {
	Title       *string
	Description *string
}
