package store

import (
	"context"
	"sort"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/errors"
)

// UpsertMoodPhoto creates or replaces a mood photo by ID.
// Photos are curated reference data; the curation loader is the only
// writer.
func (s *Store) UpsertMoodPhoto(ctx context.Context, photo *domain.MoodPhoto) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.set([]byte(photoKey(photo.ID)), photo)
}

// GetMoodPhoto retrieves one mood photo by ID.
// Returns ErrPhotoNotFound if it does not exist.
func (s *Store) GetMoodPhoto(ctx context.Context, id string) (*domain.MoodPhoto, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var photo domain.MoodPhoto
	if err := s.get([]byte(photoKey(id)), &photo); err != nil {
		if isKeyNotFound(err) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// GetMoodPhotos returns active photos ordered by display order, then ID
// for determinism. limit <= 0 means no limit.
func (s *Store) GetMoodPhotos(ctx context.Context, limit int) ([]*domain.MoodPhoto, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := scanPrefix[domain.MoodPhoto](s, photoPrefix)
	if err != nil {
		return nil, err
	}

	photos := make([]*domain.MoodPhoto, 0, len(all))
	for _, p := range all {
		if p.Active {
			photos = append(photos, p)
		}
	}

	sort.Slice(photos, func(i, j int) bool {
		if photos[i].DisplayOrder != photos[j].DisplayOrder {
			return photos[i].DisplayOrder < photos[j].DisplayOrder
		}
		return photos[i].ID < photos[j].ID
	})

	if limit > 0 && len(photos) > limit {
		photos = photos[:limit]
	}
	return photos, nil
}

// GetMoodPhotosByIDs returns the photos for the given IDs, skipping any
// that no longer exist.
func (s *Store) GetMoodPhotosByIDs(ctx context.Context, ids []string) ([]*domain.MoodPhoto, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	photos := make([]*domain.MoodPhoto, 0, len(ids))
	for _, id := range ids {
		photo, err := s.GetMoodPhoto(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPhotoNotFound) {
				continue
			}
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, nil
}
