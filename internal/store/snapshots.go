package store

import (
	"context"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// AppendSnapshot persists one embedding snapshot. Snapshots are
// append-only; the key encodes the version so history scans come back
// in version order.
func (s *Store) AppendSnapshot(ctx context.Context, snap *domain.EmbeddingSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}

	key := snapshotKey(snap.ProfileID, snap.Version, snap.ID)
	return s.set([]byte(key), snap)
}

// GetSnapshots returns a profile's snapshot history ordered by version
// ascending.
func (s *Store) GetSnapshots(ctx context.Context, profileID string) ([]*domain.EmbeddingSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snaps, err := scanPrefix[domain.EmbeddingSnapshot](s, snapshotScanPrefix(profileID))
	if err != nil {
		return nil, err
	}
	if snaps == nil {
		snaps = []*domain.EmbeddingSnapshot{}
	}
	return snaps, nil
}
