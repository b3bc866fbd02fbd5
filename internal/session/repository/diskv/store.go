package diskv

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tasksync/internal/model"
	"tasksync/internal/session/repository"
)

type implRepository struct {
	d    *diskv.Diskv
	slot string
}

// New creates a CredentialStore that keeps the credential in a single file
// named slot under basePath.
func New(basePath, slot string) repository.CredentialStore {
	return &implRepository{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 0, // the slot is read once at startup
			PathPerm:     0o700,
			FilePerm:     0o600,
		}),
		slot: slot,
	}
}

func (r *implRepository) Load(ctx context.Context) (model.Credential, error) {
	if !r.d.Has(r.slot) {
		return "", repository.ErrNoCredential
	}
	raw, err := r.d.Read(r.slot)
	if err != nil {
		return "", fmt.Errorf("failed to read credential slot %q: %w", r.slot, err)
	}
	cred := model.Credential(strings.TrimSpace(string(raw)))
	if cred.Empty() {
		return "", repository.ErrNoCredential
	}
	return cred, nil
}

func (r *implRepository) Save(ctx context.Context, cred model.Credential) error {
	if err := r.d.Write(r.slot, []byte(cred)); err != nil {
		return fmt.Errorf("failed to write credential slot %q: %w", r.slot, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context) error {
	if !r.d.Has(r.slot) {
		return nil
	}
	if err := r.d.Erase(r.slot); err != nil {
		return fmt.Errorf("failed to erase credential slot %q: %w", r.slot, err)
	}
	return nil
}
