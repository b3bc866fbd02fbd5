package taskapi

import (
	"tasksync/internal/model"
	"tasksync/pkg/taskapi"
)

func toModel(t taskapi.Task) model.Task {
	status := model.TaskStatus(t.Status)
	if status != model.TaskStatusCompleted {
		status = model.TaskStatusPending
	}
	return model.Task{
		ID:          model.TaskID(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Summary:     t.Summary,
		Status:      status,
		CreatedAt:   t.CreatedAt,
	}
}

func toModels(tasks []taskapi.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toModel(t))
	}
	return out
}
