package usecase

import (
	"context"
	"errors"
	"fmt"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/internal/session/repository"
)

func (uc *implUseCase) Restore(ctx context.Context) (session.Status, error) {
	uc.mu.Lock()
	if uc.status != session.StatusAbsent {
		st := uc.status
		uc.mu.Unlock()
		return st, fmt.Errorf("%w: restore from %s", session.ErrInvalidTransition, st)
	}

	events := []session.Event{uc.transition(session.StatusLoading)}

	cred, err := uc.store.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrNoCredential):
		events = append(events, uc.transition(session.StatusAbsent))
		uc.mu.Unlock()
		uc.publish(events...)
		return session.StatusAbsent, nil

	case err != nil:
		events = append(events, uc.transition(session.StatusAbsent))
		uc.mu.Unlock()
		uc.publish(events...)
		return session.StatusAbsent, fmt.Errorf("failed to load credential: %w", err)

	case uc.locallyExpired(cred):
		uc.l.Infof(ctx, "session: persisted credential expired, dropping without verification")
		events = append(events, uc.purgeLocked(ctx, session.StatusInvalid))
		uc.mu.Unlock()
		uc.publish(events...)
		return session.StatusInvalid, nil
	}

	uc.generation++
	uc.cred = cred
	gen := uc.generation
	events = append(events, uc.transition(session.StatusVerifying))
	uc.mu.Unlock()
	uc.publish(events...)

	return uc.verify(ctx, gen, cred), nil
}

func (uc *implUseCase) RetryVerification(ctx context.Context) (session.Status, error) {
	uc.mu.Lock()
	if uc.status != session.StatusUnreachable {
		st := uc.status
		uc.mu.Unlock()
		return st, fmt.Errorf("%w: retry from %s", session.ErrInvalidTransition, st)
	}

	if uc.locallyExpired(uc.cred) {
		ev := uc.purgeLocked(ctx, session.StatusInvalid)
		uc.mu.Unlock()
		uc.publish(ev)
		return session.StatusInvalid, nil
	}

	gen, cred := uc.generation, uc.cred
	ev := uc.transition(session.StatusVerifying)
	uc.mu.Unlock()
	uc.publish(ev)

	return uc.verify(ctx, gen, cred), nil
}

// verify probes cred for generation gen and applies the outcome unless the
// session moved on while the probe was in flight.
func (uc *implUseCase) verify(ctx context.Context, gen uint64, cred model.Credential) session.Status {
	err := uc.auth.Probe(ctx, cred)

	uc.mu.Lock()
	if gen != uc.generation || uc.status != session.StatusVerifying {
		st := uc.status
		uc.mu.Unlock()
		uc.l.Debugf(ctx, "session: discarding stale verification result for generation %d", gen)
		return st
	}

	var ev session.Event
	switch {
	case err == nil:
		ev = uc.transition(session.StatusVerified)
	case errors.Is(err, repository.ErrRejected):
		uc.l.Infof(ctx, "session: credential rejected by backend: %v", err)
		ev = uc.purgeLocked(ctx, session.StatusInvalid)
	default:
		uc.l.Warnf(ctx, "session: verification failed, keeping credential: %v", err)
		ev = uc.transition(session.StatusUnreachable)
	}
	st := uc.status
	uc.mu.Unlock()
	uc.publish(ev)
	return st
}

// purgeLocked drops the credential from memory and storage, starts a new
// generation, and moves to status. Callers hold uc.mu.
func (uc *implUseCase) purgeLocked(ctx context.Context, status session.Status) session.Event {
	uc.generation++
	uc.cred = ""
	if err := uc.store.Clear(ctx); err != nil {
		uc.l.Errorf(ctx, "session: failed to clear persisted credential: %v", err)
	}
	return uc.transition(status)
}
