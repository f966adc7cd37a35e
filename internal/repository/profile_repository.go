package repository

import (
	"context"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
)

// ProfileRepository owns the persisted current-user profile. Save
// overwrites the prior record as a whole; there are no partial
// updates.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	SavePasswordHash(ctx context.Context, email string, hash []byte) error
	Clear(ctx context.Context) error
}
