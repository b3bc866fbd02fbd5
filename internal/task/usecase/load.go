package usecase

import (
	"context"

	"tasksync/internal/model"
	"tasksync/internal/task"
	"tasksync/internal/task/repository"
)

func (uc *implUseCase) Load(ctx context.Context, mode task.ViewMode) error {
	mode = mode.Normalize()

	cred, gen, err := uc.authorize()
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.loadSeq++
	seq := uc.loadSeq
	uc.requested = mode
	uc.loading = true
	uc.mu.Unlock()

	tasks, err := uc.fetch(ctx, cred, mode)
	if err != nil {
		uc.mu.Lock()
		if seq == uc.loadSeq {
			uc.loading = false
			uc.requested = uc.mode
		}
		uc.mu.Unlock()

		uc.rejectIfUnauthorized(ctx, gen, err)
		uc.l.Warnf(ctx, "task: load %s failed: %v", mode.Kind, err)
		return mapError(err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if seq != uc.loadSeq || !uc.currentLocked(gen) {
		uc.l.Debugf(ctx, "task: discarding superseded load %d", seq)
		return nil
	}

	uc.mode = mode
	uc.tasks = tasks
	uc.loading = false
	uc.epoch++
	if uc.selectedID != "" && uc.indexLocked(uc.selectedID) < 0 {
		uc.selectedID = ""
	}
	return nil
}

func (uc *implUseCase) fetch(ctx context.Context, cred model.Credential, mode task.ViewMode) ([]model.Task, error) {
	if mode.IsSearch() {
		return uc.repo.Search(ctx, cred, repository.SearchOptions{Term: mode.Term})
	}
	return uc.repo.List(ctx, cred, repository.ListOptions{Status: mode.Status})
}

// reconcile reloads the then-current view mode, discarding unconfirmed local
// edits. A load still in flight decides the mode. Failures are logged; the
// caller reports the original error.
func (uc *implUseCase) reconcile(ctx context.Context, op string) {
	uc.mu.Lock()
	mode := uc.requested
	uc.mu.Unlock()

	if err := uc.Load(ctx, mode); err != nil {
		uc.l.Warnf(ctx, "task: reload after failed %s: %v", op, err)
	}
}
