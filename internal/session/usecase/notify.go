package usecase

import (
	"tasksync/internal/session"
)

func (uc *implUseCase) Subscribe(fn session.Listener) func() {
	uc.listenersMu.Lock()
	defer uc.listenersMu.Unlock()

	id := uc.nextID
	uc.nextID++
	uc.listeners[id] = fn

	return func() {
		uc.listenersMu.Lock()
		defer uc.listenersMu.Unlock()
		delete(uc.listeners, id)
	}
}

// publish delivers events in order. Callers must not hold uc.mu.
func (uc *implUseCase) publish(events ...session.Event) {
	if len(events) == 0 {
		return
	}

	uc.listenersMu.Lock()
	fns := make([]session.Listener, 0, len(uc.listeners))
	for _, fn := range uc.listeners {
		fns = append(fns, fn)
	}
	uc.listenersMu.Unlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}

// transition sets the status and returns the event to publish. Callers hold uc.mu.
func (uc *implUseCase) transition(to session.Status) session.Event {
	uc.status = to
	return session.Event{Status: to, Generation: uc.generation}
}
