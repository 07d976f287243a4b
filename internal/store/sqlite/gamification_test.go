package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/store"
	"github.com/fitfi/fitfi-server/internal/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSQLite(t *testing.T) (*sqlite.Store, func()) {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "fitfi-sqlite-test-*")
	require.NoError(t, err)

	s, err := sqlite.Open(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	cleanup := func() {
		s.Close()
		os.RemoveAll(tmpDir)
	}
	return s, cleanup
}

func TestInitUserGamification(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	ctx := context.Background()
	g, err := s.InitUserGamification(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", g.UserID)
	assert.Zero(t, g.TotalXP)
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, "Style Starter", g.LevelTitle)

	// Idempotent: a second init must not reset progress.
	_, err = s.AwardXP(ctx, "user-1", 50)
	require.NoError(t, err)

	again, err := s.InitUserGamification(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 50, again.TotalXP)
}

func TestGetUserGamification_NotFound(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	_, err := s.GetUserGamification(context.Background(), "nobody")
	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}

func TestAwardXP_LevelsUp(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	ctx := context.Background()
	g, err := s.AwardXP(ctx, "user-1", 120)
	require.NoError(t, err)
	assert.Equal(t, 120, g.TotalXP)
	assert.Equal(t, 2, g.Level)
	assert.Equal(t, "Trend Spotter", g.LevelTitle)

	g, err = s.AwardXP(ctx, "user-1", 900)
	require.NoError(t, err)
	assert.Equal(t, 1020, g.TotalXP)
	assert.Equal(t, 5, g.Level)
	assert.Equal(t, "Fashion Icon", g.LevelTitle)
}

func TestAwardXP_NeverNegative(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	g, err := s.AwardXP(context.Background(), "user-1", -500)
	require.NoError(t, err)
	assert.Zero(t, g.TotalXP)
	assert.Equal(t, 1, g.Level)
}

func TestUnlockAchievement_Idempotent(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	ctx := context.Background()
	a := &domain.Achievement{UserID: "user-1", Key: "first_swipe", Title: "Eerste swipe"}
	require.NoError(t, s.UnlockAchievement(ctx, a))
	require.NoError(t, s.UnlockAchievement(ctx, a))

	list, err := s.GetAchievements(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetLeaderboard_OrderedByXP(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	ctx := context.Background()
	for i, xp := range []int{30, 300, 120} {
		_, err := s.AwardXP(ctx, fmt.Sprintf("user-%d", i), xp)
		require.NoError(t, err)
	}

	entries, err := s.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "user-1", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "user-2", entries[1].UserID)
	assert.Equal(t, "user-0", entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestGetLeaderboard_LimitAndEmpty(t *testing.T) {
	s, cleanup := setupTestSQLite(t)
	defer cleanup()

	ctx := context.Background()
	entries, err := s.GetLeaderboard(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, entries)
	assert.Empty(t, entries)

	for i := 0; i < 4; i++ {
		_, err := s.AwardXP(ctx, fmt.Sprintf("user-%d", i), (i+1)*10)
		require.NoError(t, err)
	}

	entries, err = s.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
