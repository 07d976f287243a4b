package service

import (
	"testing"

	"github.com/fitfi/fitfi-server/internal/archetype"
	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectScoresSortedNonIncreasing(t *testing.T) {
	d := NewArchetypeDetector(nil)

	result := d.Detect(QuizAnswers{
		Style:     []string{"minimalistisch", "clean"},
		Fit:       "slim",
		Goals:     []string{"timeless"},
		Prints:    "effen",
		Occasions: []string{"werk"},
	}, nil)

	require.Len(t, result.Scores, 6)
	for i := 1; i < len(result.Scores); i++ {
		assert.GreaterOrEqual(t, result.Scores[i-1].Score, result.Scores[i].Score)
	}
	assert.Equal(t, archetype.Minimalist, result.Primary)
}

func TestDetectQuizOnlyKeepsBlendMultiplier(t *testing.T) {
	d := NewArchetypeDetector(nil)

	// "romantisch" contributes 25 raw points to CLASSIC and nothing else.
	// Without swipe data the 0.4 multiplier still applies: 25*0.4 = 10.
	result := d.Detect(QuizAnswers{Style: []string{"romantisch"}}, nil)

	assert.Equal(t, archetype.Classic, result.Primary)
	assert.InDelta(t, 10.0, result.Scores[0].Score, 1e-9)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestDetectSecondaryThreshold(t *testing.T) {
	d := NewArchetypeDetector(nil)

	// Streetwear and athletic both match "sport"-flavored answers; the
	// runner-up only becomes secondary above the 20-point cutoff.
	strong := d.Detect(QuizAnswers{
		Style:     []string{"streetwear", "sportief"},
		Fit:       "oversized",
		Goals:     []string{"sport", "actief"},
		Materials: "tech",
	}, nil)
	require.True(t, strong.HasSecondary())
	assert.Equal(t, archetype.Athletic, strong.Secondary)
	assert.Greater(t, strong.Scores[1].Score, 20.0)

	weak := d.Detect(QuizAnswers{Style: []string{"romantisch"}}, nil)
	assert.False(t, weak.HasSecondary())
	assert.LessOrEqual(t, weak.Scores[1].Score, 20.0)
}

func TestConfidenceBucketBoundaries(t *testing.T) {
	assert.InDelta(t, 0.9, confidenceBucket(50), 1e-9)
	assert.InDelta(t, 0.7, confidenceBucket(49.999), 1e-9)
	assert.InDelta(t, 0.7, confidenceBucket(35), 1e-9)
	assert.InDelta(t, 0.5, confidenceBucket(34.999), 1e-9)
	assert.InDelta(t, 0.5, confidenceBucket(20), 1e-9)
	assert.InDelta(t, 0.3, confidenceBucket(19.999), 1e-9)
}

func TestDetectBohemianSecondaryMapping(t *testing.T) {
	d := NewArchetypeDetector(nil)

	result := d.Detect(QuizAnswers{Style: []string{"bohemian"}}, nil)

	byKey := map[archetype.Key]float64{}
	for _, s := range result.Scores {
		byKey[s.Archetype] = s.Score
	}
	assert.InDelta(t, 12.0, byKey[archetype.AvantGarde], 1e-9)
	assert.InDelta(t, 4.0, byKey[archetype.SmartCasual], 1e-9)
}

func TestDetectSwipeSignalsRequireLikes(t *testing.T) {
	d := NewArchetypeDetector(nil)
	photo := &domain.MoodPhoto{
		ID:               "photo-1",
		StyleTags:        []string{"street", "urban"},
		ArchetypeWeights: map[string]float64{"streetwear": 0.9},
	}

	withLikes := d.Detect(QuizAnswers{}, &SwipeSignals{Photos: []*domain.MoodPhoto{photo}, LikedCount: 1})
	assert.Equal(t, archetype.Streetwear, withLikes.Primary)
	assert.Positive(t, withLikes.Scores[0].Score)

	// Rejection-only sessions contribute nothing.
	noLikes := d.Detect(QuizAnswers{}, &SwipeSignals{Photos: nil, LikedCount: 0, RejectedCount: 5})
	for _, s := range noLikes.Scores {
		assert.Zero(t, s.Score)
	}
}

func TestDetectMinimalistNeutralColorBonus(t *testing.T) {
	d := NewArchetypeDetector(nil)
	photos := []*domain.MoodPhoto{
		{ID: "p1", DominantColors: []string{"#000000", "#FFFFFF"}, ArchetypeWeights: map[string]float64{"minimal": 0.5}},
	}

	result := d.Detect(QuizAnswers{}, &SwipeSignals{Photos: photos, LikedCount: 1})

	var minimalist domain.ArchetypeScore
	for _, s := range result.Scores {
		if s.Archetype == archetype.Minimalist {
			minimalist = s
		}
	}
	// Neutral bonus 20 plus weight bonus min(0.5*10, 30)=5, blended by 0.6.
	assert.InDelta(t, 15.0, minimalist.Score, 1e-9)
	assert.Contains(t, minimalist.Reasons, "Neutral color palette (zwart/wit/grijs)")
}

func TestQuizScoresReturnsRawPositives(t *testing.T) {
	d := NewArchetypeDetector(nil)

	scores := d.QuizScores(QuizAnswers{Style: []string{"romantisch"}})

	require.Len(t, scores, 1)
	assert.InDelta(t, 25.0, scores["classic"], 1e-9)
}
