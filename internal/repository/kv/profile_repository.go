package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// Store keys. userData and conversations predate this service and are
// kept for compatibility with previously persisted state.
const (
	profileKey       = "userData"
	conversationsKey = "conversations"
	credentialsKey   = "credentials"
)

type storedCredentials struct {
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
}

type profileRepository struct {
	store storage.Store
}

func NewProfileRepository(store storage.Store) repository.ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	raw, err := r.store.Get(ctx, profileKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := r.store.Set(ctx, profileKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}
	return nil
}

func (r *profileRepository) SavePasswordHash(ctx context.Context, email string, hash []byte) error {
	raw, err := json.Marshal(storedCredentials{Email: email, PasswordHash: hash})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := r.store.Set(ctx, credentialsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	return nil
}

// Clear wipes the whole store, profile and conversations alike. It is
// the logout path and the sole deletion path for both records.
func (r *profileRepository) Clear(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}
