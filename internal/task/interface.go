package task

import (
	"context"

	"tasksync/internal/model"
	"tasksync/internal/session"
)

// UseCase is the optimistic task store kept consistent with the backend.
// Every backend operation requires a verified session and fails with
// ErrUnauthorized otherwise.
type UseCase interface {
	// Load replaces the collection with the server answer for mode.
	// The most recently issued load wins.
	Load(ctx context.Context, mode ViewMode) error

	// Create sends a new task and prepends the server representation.
	// Nothing is added locally until the server answers.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Update applies fields locally at once, then persists them.
	Update(ctx context.Context, id model.TaskID, fields Fields) error

	// ToggleStatus flips pending/completed locally at once, then persists it.
	ToggleStatus(ctx context.Context, id model.TaskID) error

	// Delete removes the task locally at once, then persists the removal.
	Delete(ctx context.Context, id model.TaskID) error

	// Select opens the task with id for detail. It reports false when the
	// id is not in the collection.
	Select(id model.TaskID) bool
	ClearSelection()

	View() View

	// OnSessionEvent drops all task state when the session ends or changes hands.
	OnSessionEvent(ev session.Event)
}
