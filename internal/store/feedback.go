package store

import (
	"context"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// SaveFeedback persists one calibration feedback row verbatim.
func (s *Store) SaveFeedback(ctx context.Context, fb *domain.CalibrationFeedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now()
	}

	identity := fb.UserID
	if identity == "" {
		identity = fb.SessionID
	}

	key := feedbackKey(identity, fb.CreatedAt, fb.ID)
	return s.set([]byte(key), fb)
}

// GetFeedback returns the calibration feedback history for an identity,
// oldest first.
func (s *Store) GetFeedback(ctx context.Context, identity string) ([]*domain.CalibrationFeedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := scanPrefix[domain.CalibrationFeedback](s, feedbackScanPrefix(identity))
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*domain.CalibrationFeedback{}
	}
	return rows, nil
}
