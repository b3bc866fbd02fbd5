package usecase

import (
	"context"
	"errors"
	"strings"

	"tasksync/internal/model"
	"tasksync/internal/task"
	"tasksync/internal/task/repository"
)

func (uc *implUseCase) Update(ctx context.Context, id model.TaskID, fields task.Fields) error {
	if fields.Empty() {
		return task.ErrNoFields
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return task.ErrTitleRequired
	}
	if fields.Description != nil && strings.TrimSpace(*fields.Description) == "" {
		return task.ErrDescriptionRequired
	}

	cred, gen, err := uc.authorize()
	if err != nil {
		return err
	}

	uc.mu.Lock()
	i := uc.indexLocked(id)
	if i < 0 {
		uc.mu.Unlock()
		return nil
	}
	if fields.Title != nil {
		uc.tasks[i].Title = *fields.Title
	}
	if fields.Description != nil {
		uc.tasks[i].Description = *fields.Description
	}
	epoch := uc.epoch
	uc.mu.Unlock()

	updated, err := uc.repo.Update(ctx, cred, id, repository.UpdateOptions{
		Title:       fields.Title,
		Description: fields.Description,
	})
	if err != nil {
		return uc.recover(ctx, gen, "update", err)
	}
	return uc.confirm(gen, epoch, &updated)
}

func (uc *implUseCase) ToggleStatus(ctx context.Context, id model.TaskID) error {
	cred, gen, err := uc.authorize()
	if err != nil {
		return err
	}

	uc.mu.Lock()
	i := uc.indexLocked(id)
	if i < 0 {
		uc.mu.Unlock()
		return nil
	}
	next := uc.tasks[i].Status.Toggled()
	uc.tasks[i].Status = next
	epoch := uc.epoch
	uc.mu.Unlock()

	canonical, err := uc.repo.SetStatus(ctx, cred, id, next)
	if err != nil {
		return uc.recover(ctx, gen, "toggle", err)
	}
	return uc.confirm(gen, epoch, canonical)
}

func (uc *implUseCase) Delete(ctx context.Context, id model.TaskID) error {
	cred, gen, err := uc.authorize()
	if err != nil {
		return err
	}

	uc.mu.Lock()
	i := uc.indexLocked(id)
	if i < 0 {
		uc.mu.Unlock()
		return nil
	}
	uc.tasks = append(uc.tasks[:i:i], uc.tasks[i+1:]...)
	if uc.selectedID == id {
		uc.selectedID = ""
	}
	uc.mu.Unlock()

	err = uc.repo.Delete(ctx, cred, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return uc.recover(ctx, gen, "delete", err)
	}
	return uc.confirm(gen, 0, nil)
}

// confirm applies the canonical representation of a successful mutation
// unless a load replaced the collection after the mutation was issued.
func (uc *implUseCase) confirm(gen, epoch uint64, canonical *model.Task) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.currentLocked(gen) {
		return task.ErrUnauthorized
	}
	if canonical != nil && epoch == uc.epoch {
		uc.replaceLocked(*canonical)
	}
	return nil
}

// recover handles a failed mutation. Rejections invalidate the session; every
// other failure reloads the current view. NotFound is not surfaced.
func (uc *implUseCase) recover(ctx context.Context, gen uint64, op string, err error) error {
	if errors.Is(err, repository.ErrUnauthorized) {
		uc.rejectIfUnauthorized(ctx, gen, err)
		return mapError(err)
	}
	if !uc.session.IsCurrent(gen) {
		return task.ErrUnauthorized
	}

	if errors.Is(err, repository.ErrNotFound) {
		uc.l.Infof(ctx, "task: %s target vanished on the server, reloading", op)
		uc.reconcile(ctx, op)
		return nil
	}

	uc.l.Warnf(ctx, "task: %s failed, reloading: %v", op, err)
	uc.reconcile(ctx, op)
	return mapError(err)
}
