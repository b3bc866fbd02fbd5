package repository

import (
	"context"
	"errors"

	"tasksync/internal/model"
)

var (
	ErrNoCredential = errors.New("no persisted credential")
	ErrRejected     = errors.New("backend rejected the credential")
	ErrUnreachable  = errors.New("backend unreachable")
	ErrBadRequest   = errors.New("backend rejected the request")
)

// CredentialStore persists the single credential slot.
type CredentialStore interface {
	// Load returns ErrNoCredential when the slot is empty.
	Load(ctx context.Context) (model.Credential, error)
	Save(ctx context.Context, cred model.Credential) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// Authenticator is the backend account surface.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (model.Credential, error)
	Register(ctx context.Context, username, password string) error
	// Probe performs a minimal authenticated request with cred.
	Probe(ctx context.Context, cred model.Credential) error
}
