package repository

import (
	"context"

	"soulshub/internal/store"
)

// AdminRepository manages the admin session epoch and the full data reset.
// The epoch is stamped into every session token; bumping it on reset drops
// all outstanding admin sessions at once.
type AdminRepository interface {
	Epoch(ctx context.Context) (int64, error)
	ResetAll(ctx context.Context) error
}

type adminRepository struct {
	store store.Store
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(s store.Store) AdminRepository {
	return &adminRepository{store: s}
}

func (r *adminRepository) Epoch(ctx context.Context) (int64, error) {
	return loadJSON(ctx, r.store, keyAdminEpoch, func() int64 { return 0 })
}

// ResetAll wipes the entire namespace, then writes the next epoch so that
// tokens issued before the reset stop validating. The epoch is the only key
// that survives a reset with meaningful content.
func (r *adminRepository) ResetAll(ctx context.Context) error {
	epoch, err := r.Epoch(ctx)
	if err != nil {
		return err
	}
	if err := r.store.WipePrefix(ctx, Prefix); err != nil {
		return err
	}
	return saveJSON(ctx, r.store, keyAdminEpoch, epoch+1)
}
