package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
	domainerrors "github.com/fitfi/fitfi-server/internal/errors"
	"github.com/fitfi/fitfi-server/internal/id"
	"github.com/fitfi/fitfi-server/internal/ratelimit"
	"github.com/fitfi/fitfi-server/internal/store"
)

// VisualPreferenceService handles the swipe surface: mood-photo
// delivery, swipe recording, per-identity stats, and the insight
// lifecycle.
//
// Every read degrades to an empty result when the store is unavailable
// so the swipe flow keeps moving.
type VisualPreferenceService struct {
	store   *store.Store
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// NewVisualPreferenceService creates a visual preference service. The
// limiter guards swipe writes per identity and may be nil to disable
// limiting.
func NewVisualPreferenceService(store *store.Store, limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *VisualPreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VisualPreferenceService{store: store, limiter: limiter, logger: logger}
}

// GetMoodPhotos returns up to limit active photos in display order.
func (s *VisualPreferenceService) GetMoodPhotos(ctx context.Context, limit int) []*domain.MoodPhoto {
	if s.store == nil {
		s.logger.Warn("store unavailable, returning no mood photos")
		return []*domain.MoodPhoto{}
	}

	photos, err := s.store.GetMoodPhotos(ctx, limit)
	if err != nil {
		s.logger.Warn("fetching mood photos failed", "error", err)
		return []*domain.MoodPhoto{}
	}
	return photos
}

// RecordSwipe persists one swipe event. Swipes are insert-only; a
// repeat judgment on the same photo is a new event, never an update.
// Writes are rate limited per identity.
func (s *VisualPreferenceService) RecordSwipe(ctx context.Context, swipe *domain.StyleSwipe) error {
	if swipe == nil {
		return domainerrors.Validation("swipe is required")
	}
	if !swipe.Direction.Valid() {
		return domainerrors.Validation("direction must be left or right")
	}

	identity := swipe.Identity()
	if identity == "" {
		return domainerrors.Validation("user_id or session_id is required")
	}

	if s.limiter != nil && !s.limiter.Allow(identity) {
		return domainerrors.RateLimited("swipe rate limit exceeded")
	}

	if s.store == nil {
		s.logger.Warn("store unavailable, swipe not recorded", "identity", identity)
		return nil
	}

	if swipe.ID == "" {
		swipe.ID = id.MustGenerate("swipe")
	}
	if swipe.CreatedAt.IsZero() {
		swipe.CreatedAt = time.Now()
	}

	if err := s.store.SaveSwipe(ctx, swipe); err != nil {
		s.logger.Error("saving swipe failed", "identity", identity, "photo_id", swipe.PhotoID, "error", err)
		return err
	}
	return nil
}

// GetUserSwipes returns the swipe history for a user, oldest first.
func (s *VisualPreferenceService) GetUserSwipes(ctx context.Context, userID string) []*domain.StyleSwipe {
	return s.swipesFor(ctx, userID)
}

// GetSessionSwipes returns the swipe history for an anonymous session,
// oldest first.
func (s *VisualPreferenceService) GetSessionSwipes(ctx context.Context, sessionID string) []*domain.StyleSwipe {
	return s.swipesFor(ctx, sessionID)
}

func (s *VisualPreferenceService) swipesFor(ctx context.Context, identity string) []*domain.StyleSwipe {
	if identity == "" || s.store == nil {
		return []*domain.StyleSwipe{}
	}

	swipes, err := s.store.GetSwipes(ctx, identity)
	if err != nil {
		s.logger.Warn("fetching swipes failed", "identity", identity, "error", err)
		return []*domain.StyleSwipe{}
	}
	return swipes
}

// GetSwipeStats summarizes an identity's swipe activity.
func (s *VisualPreferenceService) GetSwipeStats(ctx context.Context, userID, sessionID string) domain.SwipeStats {
	swipes := s.swipesFor(ctx, pickIdentity(userID, sessionID))

	stats := domain.SwipeStats{Total: len(swipes)}
	responseSum := 0
	for _, sw := range swipes {
		if sw.Liked() {
			stats.Likes++
		} else {
			stats.Rejects++
		}
		responseSum += sw.ResponseTimeMs
	}
	if stats.Total > 0 {
		stats.AvgResponseTimeMs = float64(responseSum) / float64(stats.Total)
	}
	return stats
}

// RecordInsight persists one mid-session insight for later display.
func (s *VisualPreferenceService) RecordInsight(ctx context.Context, insight *domain.SwipeInsight) error {
	if insight == nil || insight.Message == "" {
		return domainerrors.Validation("insight message is required")
	}
	if insight.UserID == "" && insight.SessionID == "" {
		return domainerrors.Validation("user_id or session_id is required")
	}

	if s.store == nil {
		s.logger.Warn("store unavailable, insight not recorded")
		return nil
	}

	if insight.ID == "" {
		insight.ID = id.MustGenerate("ins")
	}
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now()
	}

	return s.store.SaveInsight(ctx, insight)
}

// GetInsights returns the identity's insight history, oldest first.
func (s *VisualPreferenceService) GetInsights(ctx context.Context, userID, sessionID string) []*domain.SwipeInsight {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		return []*domain.SwipeInsight{}
	}

	insights, err := s.store.GetInsights(ctx, identity)
	if err != nil {
		s.logger.Warn("fetching insights failed", "identity", identity, "error", err)
		return []*domain.SwipeInsight{}
	}
	return insights
}

// DismissInsight marks one insight as dismissed. Unknown IDs are a
// no-op so a stale client cannot surface an error toast.
func (s *VisualPreferenceService) DismissInsight(ctx context.Context, userID, sessionID, insightID string) {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || insightID == "" || s.store == nil {
		return
	}

	if err := s.store.DismissInsight(ctx, identity, insightID); err != nil {
		s.logger.Warn("dismissing insight failed", "identity", identity, "insight_id", insightID, "error", err)
	}
}

// MarkSwipeSessionComplete records that a swipe session finished.
func (s *VisualPreferenceService) MarkSwipeSessionComplete(ctx context.Context, sessionID string) {
	if sessionID == "" || s.store == nil {
		return
	}

	if err := s.store.MarkSessionComplete(ctx, sessionID); err != nil {
		s.logger.Warn("marking session complete failed", "session_id", sessionID, "error", err)
	}
}

// IsSessionComplete reports whether a swipe session was marked complete.
func (s *VisualPreferenceService) IsSessionComplete(ctx context.Context, sessionID string) bool {
	if sessionID == "" || s.store == nil {
		return false
	}

	done, err := s.store.IsSessionComplete(ctx, sessionID)
	if err != nil {
		s.logger.Warn("checking session completion failed", "session_id", sessionID, "error", err)
		return false
	}
	return done
}
