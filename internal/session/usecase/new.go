package usecase

import (
	"sync"
	"time"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/session/repository"
	pkgLog "tasksync/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store repository.CredentialStore
	auth  repository.Authenticator
	now   func() time.Time

	mu         sync.Mutex
	status     session.Status
	cred       model.Credential
	generation uint64

	listenersMu sync.Mutex
	listeners   map[int]session.Listener
	nextID      int
}

// New creates a new session UseCase instance in StatusAbsent.
func New(l pkgLog.Logger, store repository.CredentialStore, auth repository.Authenticator) *implUseCase {
	return &implUseCase{
		l:         l,
		store:     store,
		auth:      auth,
		now:       time.Now,
		status:    session.StatusAbsent,
		listeners: make(map[int]session.Listener),
	}
}

// WithClock overrides the clock used for expiry checks.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

var _ session.UseCase = (*implUseCase)(nil)
