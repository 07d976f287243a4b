package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/store/sqlite"
)

// XP amounts per tracked action.
const (
	XPPerSwipe         = 5
	XPQuizComplete     = 50
	XPCalibrationRound = 25
	XPSwipeSessionDone = 30
)

// streakAchievements maps swipe streak lengths to achievement keys.
//
//nolint:gochecknoglobals // Static milestone table
var streakAchievements = map[int]domain.Achievement{
	5:  {Key: "streak-5", Title: "Op dreef"},
	10: {Key: "streak-10", Title: "Swipe Machine"},
	25: {Key: "streak-25", Title: "Niet te stoppen"},
}

// GamificationService tracks XP, levels, streaks, and achievements.
// Gamification is decorative: failures are logged and absorbed so they
// never block the onboarding or swipe flow.
type GamificationService struct {
	store  *sqlite.Store
	logger *slog.Logger
}

// NewGamificationService creates a gamification service.
func NewGamificationService(store *sqlite.Store, logger *slog.Logger) *GamificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GamificationService{store: store, logger: logger}
}

// InitUserStats ensures the user has a gamification row and returns it,
// or nil when the store is unavailable.
func (s *GamificationService) InitUserStats(ctx context.Context, userID string) *domain.UserGamification {
	if userID == "" || s.store == nil {
		return nil
	}

	stats, err := s.store.InitUserGamification(ctx, userID)
	if err != nil {
		s.logger.Warn("initializing gamification stats failed", "user_id", userID, "error", err)
		return nil
	}
	return stats
}

// GetUserStats returns the user's gamification state, or nil when the
// user has none or the store is unavailable.
func (s *GamificationService) GetUserStats(ctx context.Context, userID string) *domain.UserGamification {
	if userID == "" || s.store == nil {
		return nil
	}

	stats, err := s.store.GetUserGamification(ctx, userID)
	if err != nil {
		s.logger.Warn("fetching gamification stats failed", "user_id", userID, "error", err)
		return nil
	}
	return stats
}

// AwardXP adds XP and unlocks the level achievement when the award
// crosses a level boundary. Returns the updated state, or nil on
// failure.
func (s *GamificationService) AwardXP(ctx context.Context, userID string, amount int) *domain.UserGamification {
	if userID == "" || s.store == nil {
		return nil
	}

	before, err := s.store.InitUserGamification(ctx, userID)
	if err != nil {
		s.logger.Warn("initializing gamification stats failed", "user_id", userID, "error", err)
		return nil
	}

	after, err := s.store.AwardXP(ctx, userID, amount)
	if err != nil {
		s.logger.Warn("awarding xp failed", "user_id", userID, "amount", amount, "error", err)
		return nil
	}

	if after.Level > before.Level {
		s.unlock(ctx, &domain.Achievement{
			UserID: userID,
			Key:    fmt.Sprintf("level-%d", after.Level),
			Title:  after.LevelTitle,
		})
	}
	return after
}

// RecordSwipeStreak sets the user's streak counter and unlocks any
// streak milestone it reaches.
func (s *GamificationService) RecordSwipeStreak(ctx context.Context, userID string, streak int) {
	if userID == "" || s.store == nil {
		return
	}

	if _, err := s.store.InitUserGamification(ctx, userID); err != nil {
		s.logger.Warn("initializing gamification stats failed", "user_id", userID, "error", err)
		return
	}

	if err := s.store.SetSwipeStreak(ctx, userID, streak); err != nil {
		s.logger.Warn("updating swipe streak failed", "user_id", userID, "error", err)
		return
	}

	if milestone, ok := streakAchievements[streak]; ok {
		milestone.UserID = userID
		s.unlock(ctx, &milestone)
	}
}

// GetAchievements lists the user's unlocked achievements, oldest first.
func (s *GamificationService) GetAchievements(ctx context.Context, userID string) []*domain.Achievement {
	if userID == "" || s.store == nil {
		return []*domain.Achievement{}
	}

	achievements, err := s.store.GetAchievements(ctx, userID)
	if err != nil {
		s.logger.Warn("fetching achievements failed", "user_id", userID, "error", err)
		return []*domain.Achievement{}
	}
	return achievements
}

// GetLeaderboard returns the top users by XP. When the query fails the
// board degrades to generated placeholder rows so the surrounding UI
// keeps rendering.
func (s *GamificationService) GetLeaderboard(ctx context.Context, limit int) []*domain.LeaderboardEntry {
	if limit <= 0 {
		limit = 10
	}

	if s.store != nil {
		entries, err := s.store.GetLeaderboard(ctx, limit)
		if err == nil {
			return entries
		}
		s.logger.Warn("leaderboard query failed, serving placeholder rows", "error", err)
	}

	return placeholderLeaderboard(limit)
}

func (s *GamificationService) unlock(ctx context.Context, a *domain.Achievement) {
	if err := s.store.UnlockAchievement(ctx, a); err != nil {
		s.logger.Warn("unlocking achievement failed", "user_id", a.UserID, "key", a.Key, "error", err)
		return
	}
	s.logger.Info("achievement unlocked", "user_id", a.UserID, "key", a.Key)
}

// placeholderLeaderboard fabricates a plausible board from the level
// ladder, top rank first.
func placeholderLeaderboard(limit int) []*domain.LeaderboardEntry {
	out := make([]*domain.LeaderboardEntry, 0, limit)
	xp := 1200
	for i := 0; i < limit; i++ {
		level := domain.LevelForXP(xp)
		out = append(out, &domain.LeaderboardEntry{
			Rank:       i + 1,
			UserID:     fmt.Sprintf("stylist-%02d", i+1),
			TotalXP:    xp,
			Level:      level.Number,
			LevelTitle: level.Title,
		})
		xp -= 110
		if xp < 0 {
			xp = 0
		}
	}
	return out
}
