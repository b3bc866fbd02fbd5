package usecase

import (
	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/task"
)

func (uc *implUseCase) Select(id model.TaskID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.indexLocked(id) < 0 {
		return false
	}
	uc.selectedID = id
	return true
}

func (uc *implUseCase) ClearSelection() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.selectedID = ""
}

func (uc *implUseCase) View() task.View {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	v := task.View{
		Mode:     uc.mode,
		Tasks:    make([]model.Task, 0, len(uc.tasks)),
		Loading:  uc.loading,
		Creating: uc.creating,
	}
	for _, t := range uc.tasks {
		c := t.Clone()
		v.Tasks = append(v.Tasks, c)
		if t.ID == uc.selectedID {
			v.Selected = &c
		}
	}
	return v
}

func (uc *implUseCase) OnSessionEvent(ev session.Event) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	switch ev.Status {
	case session.StatusAbsent, session.StatusInvalid:
		uc.resetLocked(ev.Generation)
	case session.StatusVerified:
		if ev.Generation != uc.dataGen {
			uc.resetLocked(ev.Generation)
		}
	}
}
