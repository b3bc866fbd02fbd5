package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/session/repository"
	pkgErrors "tasksync/pkg/errors"
)

func (uc *implUseCase) SignIn(ctx context.Context, input session.SignInInput) error {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return session.ErrCredentialsRequired
	}

	cred, err := uc.auth.Login(ctx, input.Username, input.Password)
	if err != nil {
		return mapAuthError(err)
	}
	return uc.Login(ctx, cred)
}

func (uc *implUseCase) Register(ctx context.Context, input session.SignInInput) error {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return session.ErrCredentialsRequired
	}

	if err := uc.auth.Register(ctx, input.Username, input.Password); err != nil {
		return mapAuthError(err)
	}
	uc.l.Infof(ctx, "session: registered account %q", input.Username)
	return nil
}

func (uc *implUseCase) Login(ctx context.Context, cred model.Credential) error {
	if _, err := expiresAt(cred); err != nil {
		return err
	}

	uc.mu.Lock()
	if err := uc.store.Save(ctx, cred); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	uc.generation++
	uc.cred = cred
	ev := uc.transition(session.StatusVerified)
	uc.mu.Unlock()

	uc.publish(ev)
	return nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	uc.mu.Lock()
	changed := uc.status != session.StatusAbsent || !uc.cred.Empty()
	uc.generation++
	uc.cred = ""
	err := uc.store.Clear(ctx)
	ev := uc.transition(session.StatusAbsent)
	uc.mu.Unlock()

	if changed {
		uc.publish(ev)
	}
	if err != nil {
		return fmt.Errorf("failed to clear persisted credential: %w", err)
	}
	return nil
}

func (uc *implUseCase) Acknowledge(ctx context.Context) error {
	uc.mu.Lock()
	if uc.status != session.StatusInvalid {
		st := uc.status
		uc.mu.Unlock()
		return fmt.Errorf("%w: acknowledge from %s", session.ErrInvalidTransition, st)
	}
	ev := uc.transition(session.StatusAbsent)
	uc.mu.Unlock()

	uc.publish(ev)
	return nil
}

func (uc *implUseCase) Reject(ctx context.Context, generation uint64) {
	uc.mu.Lock()
	if generation != uc.generation || uc.cred.Empty() {
		uc.mu.Unlock()
		return
	}
	uc.l.Infof(ctx, "session: backend rejected credential, purging")
	ev := uc.purgeLocked(ctx, session.StatusInvalid)
	uc.mu.Unlock()

	uc.publish(ev)
}

func (uc *implUseCase) Status() session.Status {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.status
}

func (uc *implUseCase) Credential() (model.Credential, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cred, !uc.cred.Empty()
}

func (uc *implUseCase) Authorized() (model.Credential, uint64, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.status != session.StatusVerified {
		return "", uc.generation, false
	}
	return uc.cred, uc.generation, true
}

func (uc *implUseCase) IsCurrent(generation uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return generation == uc.generation
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRejected):
		return pkgErrors.Classify(session.ErrAuthRejected, err)
	case errors.Is(err, repository.ErrBadRequest):
		return pkgErrors.Classify(session.ErrRegistration, err)
	default:
		return pkgErrors.Classify(session.ErrUnreachable, err)
	}
}
