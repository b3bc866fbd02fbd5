package task

import (
	"strings"

	"tasksync/internal/model"
)

// ModeKind distinguishes the two view modes.
type ModeKind string

const (
	ModeAll    ModeKind = "all"
	ModeSearch ModeKind = "search"
)

// ViewMode selects which server query backs the collection.
type ViewMode struct {
	Kind   ModeKind         `json:"kind"`
	Term   string           `json:"term,omitempty"`
	Status model.TaskStatus `json:"status,omitempty"` // server-side filter, list mode only
}

// All returns the list-everything mode.
func All() ViewMode {
	return ViewMode{Kind: ModeAll}
}

// Filtered returns the list mode restricted to status. An unknown status
// lists everything.
func Filtered(status model.TaskStatus) ViewMode {
	return ViewMode{Kind: ModeAll, Status: status}.Normalize()
}

// Search returns the search mode for term. A blank term yields All.
func Search(term string) ViewMode {
	return ViewMode{Kind: ModeSearch, Term: term}.Normalize()
}

// Normalize folds blank search terms into list mode. Search drops the status
// filter since the backend cannot apply it.
func (m ViewMode) Normalize() ViewMode {
	if m.Kind == ModeSearch && strings.TrimSpace(m.Term) != "" {
		return ViewMode{Kind: ModeSearch, Term: strings.TrimSpace(m.Term)}
	}
	switch m.Status {
	case model.TaskStatusPending, model.TaskStatusCompleted:
		return ViewMode{Kind: ModeAll, Status: m.Status}
	}
	return All()
}

func (m ViewMode) IsSearch() bool { return m.Kind == ModeSearch }

// CreateInput is the input for Create.
type CreateInput struct {
	Title       string
	Description string
}

// Fields is a partial task edit. Nil fields are left untouched.
type Fields struct {
	Title       *string
	Description *string
}

// Empty reports whether no field is set.
func (f Fields) Empty() bool {
	return f.Title == nil && f.Description == nil
}

// View is a consistent snapshot of the store.
type View struct {
	Mode     ViewMode
	Tasks    []model.Task
	Selected *model.Task // resolved against Tasks; nil when nothing is open
	Loading  bool        // the latest issued load has not completed
	Creating int         // creations awaiting the server
}
