package store

import (
	"context"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// SaveProfile creates or updates a style profile. The key encodes the
// identity and creation time, so an identity may accumulate multiple
// profiles; the newest one is the active draft.
func (s *Store) SaveProfile(ctx context.Context, profile *domain.StyleProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()

	key := profileKey(profile.Identity(), profile.CreatedAt, profile.ID)
	return s.set([]byte(key), profile)
}

// GetProfiles returns all profiles for an identity, oldest first.
func (s *Store) GetProfiles(ctx context.Context, identity string) ([]*domain.StyleProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles, err := scanPrefix[domain.StyleProfile](s, profileScanPrefix(identity))
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []*domain.StyleProfile{}
	}
	return profiles, nil
}

// GetLatestProfile returns the most recently created profile for an
// identity. Returns ErrProfileNotFound when none exists.
func (s *Store) GetLatestProfile(ctx context.Context, identity string) (*domain.StyleProfile, error) {
	profiles, err := s.GetProfiles(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}
	return profiles[len(profiles)-1], nil
}

// GetLockedProfile returns the most recently created profile whose
// embedding is locked. If multiple lock attempts exist, last-created
// wins. Returns ErrProfileNotFound when no locked profile exists.
func (s *Store) GetLockedProfile(ctx context.Context, identity string) (*domain.StyleProfile, error) {
	profiles, err := s.GetProfiles(ctx, identity)
	if err != nil {
		return nil, err
	}

	for i := len(profiles) - 1; i >= 0; i-- {
		if profiles[i].IsLocked() {
			return profiles[i], nil
		}
	}
	return nil, ErrProfileNotFound
}
