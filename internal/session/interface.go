package session

import (
	"context"

	"tasksync/internal/model"
)

// UseCase owns the single credential of the process: its persistence, expiry
// inspection, and server-side verification.
type UseCase interface {
	// Restore reads the persisted credential at startup and verifies it.
	// Valid only from StatusAbsent.
	Restore(ctx context.Context) (Status, error)

	// RetryVerification re-probes the backend. Valid only from StatusUnreachable.
	RetryVerification(ctx context.Context) (Status, error)

	// SignIn authenticates against the backend and logs in with the issued credential.
	SignIn(ctx context.Context, input SignInInput) error

	// Register creates a backend account. It does not log in.
	Register(ctx context.Context, input SignInInput) error

	// Login installs an already issued credential as Verified and persists it.
	Login(ctx context.Context, cred model.Credential) error

	// Logout purges the credential from memory and storage. Idempotent.
	Logout(ctx context.Context) error

	// Acknowledge moves an invalid session to StatusAbsent. The credential
	// was already purged when the session became invalid.
	Acknowledge(ctx context.Context) error

	Status() Status
	Credential() (model.Credential, bool)

	Authorizer

	// Subscribe registers a listener and returns a function that removes it.
	Subscribe(fn Listener) (cancel func())
}

// Authorizer is the narrow view dependents use to act on behalf of the session.
type Authorizer interface {
	// Authorized returns the credential and its generation when the session is Verified.
	Authorized() (model.Credential, uint64, bool)

	// IsCurrent reports whether generation is still the live credential generation.
	IsCurrent(generation uint64) bool

	// Reject reports a server authentication rejection observed for generation.
	// Stale generations are ignored.
	Reject(ctx context.Context, generation uint64)
}
