package http

import (
	"time"

	"tasksync/internal/model"
	"tasksync/internal/task"
)

// --- Request DTOs ---

type loadReq struct {
	Query  string
	Status model.TaskStatus
}

func (r loadReq) toMode() task.ViewMode {
	return task.ViewMode{Kind: task.ModeSearch, Term: r.Query, Status: r.Status}.Normalize()
}

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (r updateReq) toFields() task.Fields {
	return task.Fields{
		Title:       r.Title,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     *string   `json:"summary"`
	Preview     string    `json:"preview"`
	Status      string    `json:"status"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Summary:     t.Summary,
		Preview:     t.Preview(),
		Status:      string(t.Status),
		Completed:   t.Completed(),
		CreatedAt:   t.CreatedAt,
	}
}

type modeResp struct {
	Kind   string `json:"kind"`
	Term   string `json:"term,omitempty"`
	Status string `json:"status,omitempty"`
}

type viewResp struct {
	Mode     modeResp   `json:"mode"`
	Tasks    []taskResp `json:"tasks"`
	Selected *taskResp  `json:"selected"`
	Loading  bool       `json:"loading"`
	Creating int        `json:"creating"`
}

func newViewResp(v task.View) viewResp {
	resp := viewResp{
		Mode:     modeResp{Kind: string(v.Mode.Kind), Term: v.Mode.Term, Status: string(v.Mode.Status)},
		Tasks:    make([]taskResp, len(v.Tasks)),
		Loading:  v.Loading,
		Creating: v.Creating,
	}
	for i, t := range v.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	if v.Selected != nil {
		sel := newTaskResp(*v.Selected)
		resp.Selected = &sel
	}
	return resp
}
