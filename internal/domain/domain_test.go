package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptySwipePattern(t *testing.T) {
	p := EmptySwipePattern()

	assert.NotNil(t, p.DominantColors)
	assert.NotNil(t, p.PreferredStyles)
	assert.NotNil(t, p.ArchetypeWeights)
	assert.NotNil(t, p.TopArchetypes)
	assert.Empty(t, p.DominantColors)
	assert.Zero(t, p.Confidence)
	assert.False(t, p.ShouldAdapt)
	assert.Empty(t, p.TopArchetype())
}

func TestMoodPhoto_WeightFor(t *testing.T) {
	photo := &MoodPhoto{
		ArchetypeWeights: map[string]float64{"minimal": 0.8},
	}

	assert.Equal(t, 0.8, photo.WeightFor("minimal"))
	assert.Zero(t, photo.WeightFor("classic"))
	assert.True(t, photo.HasArchetype("minimal"))
	assert.False(t, photo.HasArchetype("classic"))

	bare := &MoodPhoto{}
	assert.Zero(t, bare.WeightFor("minimal"))
}

func TestStyleSwipe_Identity(t *testing.T) {
	s := &StyleSwipe{UserID: "user-1", SessionID: "sess-1"}
	assert.Equal(t, "user-1", s.Identity())

	anon := &StyleSwipe{SessionID: "sess-1"}
	assert.Equal(t, "sess-1", anon.Identity())
}

func TestSwipeDirection_Valid(t *testing.T) {
	assert.True(t, SwipeLeft.Valid())
	assert.True(t, SwipeRight.Valid())
	assert.False(t, SwipeDirection("up").Valid())
}

func TestStyleProfile_LockState(t *testing.T) {
	p := NewStyleProfile("prof-1", "user-1", "")
	assert.Equal(t, LockStateUnlocked, p.LockState())
	assert.False(t, p.IsLocked())
	assert.Equal(t, 1, p.Version)

	now := time.Now()
	p.EmbeddingLockedAt = &now
	assert.Equal(t, LockStateLocked, p.LockState())
	assert.True(t, p.IsLocked())
}

func TestStyleEmbedding_Clone(t *testing.T) {
	e := StyleEmbedding{"minimal": 60, "classic": 40}
	c := e.Clone()
	c["minimal"] = 0

	assert.Equal(t, 60.0, e["minimal"])

	var nilEmb StyleEmbedding
	cloned := nilEmb.Clone()
	require.NotNil(t, cloned)
	assert.Empty(t, cloned)
}

func TestStyleEmbedding_IsEmpty(t *testing.T) {
	assert.True(t, StyleEmbedding{}.IsEmpty())
	assert.True(t, StyleEmbedding{"minimal": 0}.IsEmpty())
	assert.False(t, StyleEmbedding{"minimal": 1}.IsEmpty())

	var nilEmb StyleEmbedding
	assert.True(t, nilEmb.IsEmpty())
}

func TestCalibrationReaction_Valid(t *testing.T) {
	assert.True(t, ReactionSpotOn.Valid())
	assert.True(t, ReactionNotForMe.Valid())
	assert.True(t, ReactionMaybe.Valid())
	assert.False(t, CalibrationReaction("love_it").Valid())
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantTitle string
	}{
		{0, 1, "Style Starter"},
		{99, 1, "Style Starter"},
		{100, 2, "Trend Spotter"},
		{249, 2, "Trend Spotter"},
		{250, 3, "Outfit Explorer"},
		{500, 4, "Style Curator"},
		{1000, 5, "Fashion Icon"},
		{100000, 5, "Fashion Icon"},
	}

	for _, tt := range tests {
		l := LevelForXP(tt.xp)
		assert.Equal(t, tt.wantLevel, l.Number, "xp=%d", tt.xp)
		assert.Equal(t, tt.wantTitle, l.Title, "xp=%d", tt.xp)
	}
}

func TestLevels_Ascending(t *testing.T) {
	ladder := Levels()
	require.NotEmpty(t, ladder)
	for i := 1; i < len(ladder); i++ {
		assert.Greater(t, ladder[i].MinXP, ladder[i-1].MinXP)
		assert.Equal(t, ladder[i-1].Number+1, ladder[i].Number)
	}
}
