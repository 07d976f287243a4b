package store

import (
	"context"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// SaveSwipe persists one swipe. Swipes are insert-only; the key encodes
// identity and creation time so history scans come back in order.
func (s *Store) SaveSwipe(ctx context.Context, swipe *domain.StyleSwipe) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if swipe.CreatedAt.IsZero() {
		swipe.CreatedAt = time.Now()
	}

	key := swipeKey(swipe.Identity(), swipe.CreatedAt, swipe.ID)
	return s.set([]byte(key), swipe)
}

// GetSwipes returns the full swipe history for an identity (user ID or
// session ID), oldest first.
func (s *Store) GetSwipes(ctx context.Context, identity string) ([]*domain.StyleSwipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	swipes, err := scanPrefix[domain.StyleSwipe](s, swipeScanPrefix(identity))
	if err != nil {
		return nil, err
	}
	if swipes == nil {
		swipes = []*domain.StyleSwipe{}
	}
	return swipes, nil
}

// GetLikedSwipes returns the liked swipes for an identity, oldest first.
func (s *Store) GetLikedSwipes(ctx context.Context, identity string) ([]*domain.StyleSwipe, error) {
	swipes, err := s.GetSwipes(ctx, identity)
	if err != nil {
		return nil, err
	}

	liked := make([]*domain.StyleSwipe, 0, len(swipes))
	for _, sw := range swipes {
		if sw.Liked() {
			liked = append(liked, sw)
		}
	}
	return liked, nil
}

// MarkSessionComplete records that a swipe session has finished.
func (s *Store) MarkSessionComplete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record := struct {
		SessionID   string    `json:"session_id"`
		CompletedAt time.Time `json:"completed_at"`
	}{SessionID: sessionID, CompletedAt: time.Now()}

	return s.set([]byte(sessionKey(sessionID)), record)
}

// IsSessionComplete reports whether a swipe session was marked complete.
func (s *Store) IsSessionComplete(ctx context.Context, sessionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return s.exists([]byte(sessionKey(sessionID)))
}
