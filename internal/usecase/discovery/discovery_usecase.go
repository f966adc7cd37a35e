package discovery

import (
	"context"
	"fmt"

	"github.com/soulmatch/soulmatch-backend/internal/catalog"
	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// DiscoveryUseCase produces the match feed for the current user. The
// feed is the static catalog narrowed by the user's stated preference;
// no scoring or ranking happens here, compatibility values come with
// the catalog.
type DiscoveryUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewDiscoveryUseCase(profileRepo repository.ProfileRepository) *DiscoveryUseCase {
	return &DiscoveryUseCase{profileRepo: profileRepo}
}

// Matches returns the candidates matching the current user's
// preference, in catalog order.
func (uc *DiscoveryUseCase) Matches(ctx context.Context) ([]domain.Candidate, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current profile: %w", err)
	}
	return catalog.Filter(catalog.All(), profile.InterestedIn), nil
}
