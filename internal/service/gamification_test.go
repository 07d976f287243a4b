package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fitfi/fitfi-server/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGamificationStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "gamification.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitUserStatsIdempotent(t *testing.T) {
	s := setupGamificationStore(t)
	svc := NewGamificationService(s, nil)
	ctx := context.Background()

	first := svc.InitUserStats(ctx, "user-1")
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, "Style Starter", first.LevelTitle)
	assert.Zero(t, first.TotalXP)

	svc.AwardXP(ctx, "user-1", 40)

	second := svc.InitUserStats(ctx, "user-1")
	require.NotNil(t, second)
	assert.Equal(t, 40, second.TotalXP, "re-init must not reset progress")
}

func TestAwardXPLevelsUpAndUnlocksAchievement(t *testing.T) {
	s := setupGamificationStore(t)
	svc := NewGamificationService(s, nil)
	ctx := context.Background()

	stats := svc.AwardXP(ctx, "user-2", 120)

	require.NotNil(t, stats)
	assert.Equal(t, 120, stats.TotalXP)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, "Trend Spotter", stats.LevelTitle)

	achievements := svc.GetAchievements(ctx, "user-2")
	require.Len(t, achievements, 1)
	assert.Equal(t, "level-2", achievements[0].Key)
	assert.Equal(t, "Trend Spotter", achievements[0].Title)
}

func TestAwardXPWithinLevelUnlocksNothing(t *testing.T) {
	s := setupGamificationStore(t)
	svc := NewGamificationService(s, nil)
	ctx := context.Background()

	stats := svc.AwardXP(ctx, "user-3", XPPerSwipe)

	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Level)
	assert.Empty(t, svc.GetAchievements(ctx, "user-3"))
}

func TestRecordSwipeStreakMilestones(t *testing.T) {
	s := setupGamificationStore(t)
	svc := NewGamificationService(s, nil)
	ctx := context.Background()

	svc.RecordSwipeStreak(ctx, "user-4", 4)
	assert.Empty(t, svc.GetAchievements(ctx, "user-4"))

	svc.RecordSwipeStreak(ctx, "user-4", 5)

	stats := svc.GetUserStats(ctx, "user-4")
	require.NotNil(t, stats)
	assert.Equal(t, 5, stats.SwipeStreak)

	achievements := svc.GetAchievements(ctx, "user-4")
	require.Len(t, achievements, 1)
	assert.Equal(t, "streak-5", achievements[0].Key)
	assert.Equal(t, "Op dreef", achievements[0].Title)
}

func TestGetLeaderboardOrdersByXP(t *testing.T) {
	s := setupGamificationStore(t)
	svc := NewGamificationService(s, nil)
	ctx := context.Background()

	svc.AwardXP(ctx, "user-low", 50)
	svc.AwardXP(ctx, "user-high", 600)
	svc.AwardXP(ctx, "user-mid", 300)

	board := svc.GetLeaderboard(ctx, 10)

	require.Len(t, board, 3)
	assert.Equal(t, "user-high", board[0].UserID)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "user-mid", board[1].UserID)
	assert.Equal(t, "user-low", board[2].UserID)
}

func TestGetLeaderboardFallsBackToPlaceholders(t *testing.T) {
	svc := NewGamificationService(nil, nil)

	board := svc.GetLeaderboard(context.Background(), 5)

	require.Len(t, board, 5)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "Fashion Icon", board[0].LevelTitle)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].TotalXP, board[i].TotalXP)
		assert.Equal(t, i+1, board[i].Rank)
	}
}

func TestGamificationDegradesWithoutStore(t *testing.T) {
	svc := NewGamificationService(nil, nil)
	ctx := context.Background()

	assert.Nil(t, svc.InitUserStats(ctx, "user-x"))
	assert.Nil(t, svc.GetUserStats(ctx, "user-x"))
	assert.Nil(t, svc.AwardXP(ctx, "user-x", 10))
	assert.Empty(t, svc.GetAchievements(ctx, "user-x"))
	svc.RecordSwipeStreak(ctx, "user-x", 3)
}
