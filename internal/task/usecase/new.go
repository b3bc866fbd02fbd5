package usecase

import (
	"sync"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/task"
	"tasksync/internal/task/repository"
	pkgLog "tasksync/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	session session.Authorizer

	mu         sync.Mutex
	tasks      []model.Task
	mode       task.ViewMode // mode of the collection as last applied
	requested  task.ViewMode // mode of the last issued load
	selectedID model.TaskID
	loadSeq    uint64 // last issued load
	loading    bool
	epoch      uint64 // bumped whenever the collection is replaced wholesale
	creating   int
	dataGen    uint64 // session generation the collection belongs to
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, sess session.Authorizer) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		session:   sess,
		mode:      task.All(),
		requested: task.All(),
	}
}

var _ task.UseCase = (*implUseCase)(nil)
