package usecase

import (
	"context"
	"errors"

	"tasksync/internal/model"
	"tasksync/internal/task"
	"tasksync/internal/task/repository"
	pkgErrors "tasksync/pkg/errors"
)

// authorize returns the credential to act with and its session generation.
// Task state left over from another generation is dropped first.
func (uc *implUseCase) authorize() (model.Credential, uint64, error) {
	cred, gen, ok := uc.session.Authorized()
	if !ok {
		return "", 0, task.ErrUnauthorized
	}

	uc.mu.Lock()
	if uc.dataGen != gen {
		uc.resetLocked(gen)
	}
	uc.mu.Unlock()
	return cred, gen, nil
}

// currentLocked reports whether a completion issued under gen may still touch
// the collection. Callers hold uc.mu.
func (uc *implUseCase) currentLocked(gen uint64) bool {
	return uc.dataGen == gen && uc.session.IsCurrent(gen)
}

// resetLocked drops every piece of task state and invalidates all in-flight
// completions. Callers hold uc.mu.
func (uc *implUseCase) resetLocked(gen uint64) {
	uc.tasks = nil
	uc.selectedID = ""
	uc.mode = task.All()
	uc.requested = task.All()
	uc.loadSeq++
	uc.loading = false
	uc.epoch++
	uc.dataGen = gen
}

func (uc *implUseCase) indexLocked(id model.TaskID) int {
	for i := range uc.tasks {
		if uc.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// replaceLocked swaps in the canonical representation of a task that is still
// in the collection.
func (uc *implUseCase) replaceLocked(t model.Task) {
	if i := uc.indexLocked(t.ID); i >= 0 {
		uc.tasks[i] = t
	}
}

// mapError translates repository errors into the task error taxonomy.
func mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUnauthorized):
		return pkgErrors.Classify(task.ErrUnauthorized, err)
	case errors.Is(err, repository.ErrNetwork):
		return pkgErrors.Classify(task.ErrNetwork, err)
	default:
		return pkgErrors.Classify(task.ErrServer, err)
	}
}

// rejectIfUnauthorized reports a backend rejection to the session. It must be
// called without uc.mu held since the session notifies the store.
func (uc *implUseCase) rejectIfUnauthorized(ctx context.Context, gen uint64, err error) {
	if errors.Is(err, repository.ErrUnauthorized) {
		uc.l.Infof(ctx, "task: backend rejected the credential, invalidating session")
		uc.session.Reject(ctx, gen)
	}
}
