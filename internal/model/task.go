package model

import "time"

// TaskStatus is the binary completion state of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusCompleted {
		return TaskStatusPending
	}
	return TaskStatusCompleted
}

// TaskID is the opaque, server-assigned task identifier.
type TaskID string

func (id TaskID) String() string { return string(id) }

// Task is a task as returned by the backend.
type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Summary     *string    `json:"summary,omitempty"` // server-derived from description
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Completed reports whether the task is in the completed state.
func (t Task) Completed() bool {
	return t.Status == TaskStatusCompleted
}

// Preview returns the summary when the server produced one, else the description.
func (t Task) Preview() string {
	if t.Summary != nil && *t.Summary != "" {
		return *t.Summary
	}
	return t.Description
}

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	if t.Summary != nil {
		s := *t.Summary
		t.Summary = &s
	}
	return t
}
