package store

import (
	"context"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// SaveInsight persists one swipe insight for an identity.
func (s *Store) SaveInsight(ctx context.Context, insight *domain.SwipeInsight) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	identity := insight.UserID
	if identity == "" {
		identity = insight.SessionID
	}

	key := insightKey(identity, insight.CreatedAt, insight.ID)
	return s.set([]byte(key), insight)
}

// GetInsights returns the insight history for an identity, oldest first.
func (s *Store) GetInsights(ctx context.Context, identity string) ([]*domain.SwipeInsight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	insights, err := scanPrefix[domain.SwipeInsight](s, insightScanPrefix(identity))
	if err != nil {
		return nil, err
	}
	if insights == nil {
		insights = []*domain.SwipeInsight{}
	}
	return insights, nil
}

// DismissInsight marks one insight as dismissed.
// Returns ErrInsightNotFound if the identity has no insight with that ID.
func (s *Store) DismissInsight(ctx context.Context, identity, insightID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	insights, err := s.GetInsights(ctx, identity)
	if err != nil {
		return err
	}

	for _, ins := range insights {
		if ins.ID == insightID {
			ins.Dismissed = true
			return s.set([]byte(insightKey(identity, ins.CreatedAt, ins.ID)), ins)
		}
	}
	return ErrInsightNotFound
}
