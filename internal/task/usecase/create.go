package usecase

import (
	"context"
	"strings"

	"tasksync/internal/model"
	"tasksync/internal/task"
	"tasksync/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" {
		return model.Task{}, task.ErrTitleRequired
	}
	if description == "" {
		return model.Task{}, task.ErrDescriptionRequired
	}

	cred, gen, err := uc.authorize()
	if err != nil {
		return model.Task{}, err
	}

	uc.mu.Lock()
	uc.creating++
	uc.mu.Unlock()

	created, err := uc.repo.Create(ctx, cred, repository.CreateOptions{
		Title:       title,
		Description: description,
	})

	uc.mu.Lock()
	uc.creating--
	if err != nil {
		uc.mu.Unlock()
		uc.rejectIfUnauthorized(ctx, gen, err)
		uc.l.Warnf(ctx, "task: create failed: %v", err)
		return model.Task{}, mapError(err)
	}
	if !uc.currentLocked(gen) {
		uc.mu.Unlock()
		return model.Task{}, task.ErrUnauthorized
	}
	if uc.indexLocked(created.ID) < 0 {
		uc.tasks = append([]model.Task{created}, uc.tasks...)
	}
	uc.mu.Unlock()

	return created.Clone(), nil
}
