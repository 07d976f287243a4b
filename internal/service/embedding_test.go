package service

import (
	"context"
	"testing"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/errors"
	"github.com/fitfi/fitfi-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareEmbeddingsIdentical(t *testing.T) {
	e := domain.StyleEmbedding{"minimal": 60, "classic": 25}

	cmp := CompareEmbeddings(e, e)

	assert.Equal(t, 100, cmp.Similarity)
	assert.Empty(t, cmp.Changed)
	assert.Empty(t, cmp.New)
	assert.Empty(t, cmp.Removed)
}

func TestCompareEmbeddingsBothEmpty(t *testing.T) {
	cmp := CompareEmbeddings(domain.StyleEmbedding{}, domain.StyleEmbedding{})

	assert.Equal(t, 100, cmp.Similarity)
	assert.NotNil(t, cmp.Changed)
	assert.NotNil(t, cmp.New)
	assert.NotNil(t, cmp.Removed)
}

func TestCompareEmbeddingsClassifiesMovement(t *testing.T) {
	before := domain.StyleEmbedding{"minimal": 60, "classic": 25, "athletic": 10}
	after := domain.StyleEmbedding{"minimal": 45, "classic": 30, "streetwear": 20}

	cmp := CompareEmbeddings(before, after)

	// minimal moved by 15 (above the 10-point threshold), classic by 5.
	assert.Equal(t, []string{"minimal"}, cmp.Changed)
	assert.Equal(t, []string{"streetwear"}, cmp.New)
	assert.Equal(t, []string{"athletic"}, cmp.Removed)
	assert.Less(t, cmp.Similarity, 100)
}

func TestGetTopArchetypesEmptyEmbedding(t *testing.T) {
	assert.Empty(t, GetTopArchetypes(domain.StyleEmbedding{}, 3))
}

func TestGetTopArchetypesRankingAndPercentages(t *testing.T) {
	embedding := domain.StyleEmbedding{"minimal": 60, "classic": 25, "streetwear": 15}

	top := GetTopArchetypes(embedding, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "minimal", top[0].Archetype)
	assert.Equal(t, 60, top[0].Percentage)
	assert.Equal(t, "classic", top[1].Archetype)
	assert.Equal(t, 25, top[1].Percentage)
}

func TestGetTopArchetypesScaleInvariantRanking(t *testing.T) {
	embedding := domain.StyleEmbedding{"minimal": 60, "classic": 25, "streetwear": 15}
	scaled := domain.StyleEmbedding{}
	for k, v := range embedding {
		scaled[k] = v * 7.5
	}

	original := GetTopArchetypes(embedding, 3)
	rescaled := GetTopArchetypes(scaled, 3)

	require.Len(t, rescaled, len(original))
	for i := range original {
		assert.Equal(t, original[i].Archetype, rescaled[i].Archetype)
		assert.Equal(t, original[i].Percentage, rescaled[i].Percentage)
	}
}

func TestFormatEmbeddingForDisplay(t *testing.T) {
	embedding := domain.StyleEmbedding{"minimal": 60, "smart_casual": 40}

	display := FormatEmbeddingForDisplay(embedding)

	assert.Equal(t, "minimal (60%) • smart casual (40%)", display)
}

func TestEmbeddingServiceDegradesWithoutStore(t *testing.T) {
	svc := NewEmbeddingService(nil, nil)
	ctx := context.Background()

	assert.Empty(t, svc.ComputeFinalEmbedding(ctx, "user-1", ""))
	assert.Nil(t, svc.GetLockedEmbedding(ctx, "user-1", ""))
	assert.False(t, svc.IsEmbeddingLocked(ctx, "user-1", ""))
	assert.Empty(t, svc.GetEmbeddingHistory(ctx, "user-1", ""))
	assert.Nil(t, svc.GetInfluenceBreakdown(ctx, "user-1", ""))

	locked, err := svc.LockEmbedding(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Empty(t, locked)
}

func TestLockEmbeddingLifecycle(t *testing.T) {
	s := setupServiceStore(t)
	ctx := context.Background()

	profile := domain.NewStyleProfile("prof-1", "", "sess-lock")
	profile.QuizEmbedding = domain.StyleEmbedding{"minimal": 80, "classic": 40}
	require.NoError(t, s.SaveProfile(ctx, profile))

	svc := NewEmbeddingService(s, nil)

	require.False(t, svc.IsEmbeddingLocked(ctx, "", "sess-lock"))

	locked, err := svc.LockEmbedding(ctx, "", "sess-lock")
	require.NoError(t, err)
	assert.InDelta(t, 80*store.QuizBlendWeight, locked["minimal"], 1e-9)

	assert.True(t, svc.IsEmbeddingLocked(ctx, "", "sess-lock"))

	// The lock is one-way; a second attempt conflicts.
	_, err = svc.LockEmbedding(ctx, "", "sess-lock")
	assert.ErrorIs(t, err, errors.ErrLocked)

	breakdown := svc.GetInfluenceBreakdown(ctx, "", "sess-lock")
	require.NotNil(t, breakdown)
	assert.InDelta(t, store.QuizBlendWeight, breakdown.QuizInfluence, 1e-9)
	assert.Equal(t, 2, breakdown.TotalArchetypes)
}

func TestGetStabilityMetricsFirstSnapshotScoresFull(t *testing.T) {
	s := setupServiceStore(t)
	ctx := context.Background()

	profile := domain.NewStyleProfile("prof-2", "", "sess-stab")
	profile.QuizEmbedding = domain.StyleEmbedding{"minimal": 80}
	require.NoError(t, s.SaveProfile(ctx, profile))

	svc := NewEmbeddingService(s, nil)
	_, err := svc.LockEmbedding(ctx, "", "sess-stab")
	require.NoError(t, err)

	points := svc.GetStabilityMetrics(ctx, "", "sess-stab")

	require.Len(t, points, 1)
	assert.Equal(t, 100, points[0].StabilityScore)
	assert.Equal(t, 2, points[0].Version)
}
