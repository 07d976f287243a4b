package domain

// SwipePattern is the aggregate signal derived from a swipe history.
// It is recomputed from the full history on demand, never persisted.
type SwipePattern struct {
	// DominantColors are the top 3 colors by frequency among liked photos.
	DominantColors []string `json:"dominant_colors"`
	// PreferredStyles are the top 3 style tags by frequency among liked
	// photos.
	PreferredStyles []string `json:"preferred_styles"`
	// ArchetypeWeights accumulates each liked photo's archetype weights.
	ArchetypeWeights map[string]float64 `json:"archetype_weights"`
	// TopArchetypes are the top 3 archetype keys by accumulated weight.
	TopArchetypes []string `json:"top_archetypes"`
	// AvgResponseTimeMs is the mean response time across all swipes.
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
	// Confidence grows with swipe count, saturating at 10 swipes.
	Confidence float64 `json:"confidence"`
	// LikeRate is likes/total in [0,1].
	LikeRate float64 `json:"like_rate"`
	// ShouldAdapt gates adaptive photo loading: true only when the user
	// has swiped enough and is discriminating rather than liking or
	// rejecting everything.
	ShouldAdapt bool `json:"should_adapt"`
}

// EmptySwipePattern returns the pattern for an empty history: all
// collections empty (non-nil), all numbers zero.
func EmptySwipePattern() SwipePattern {
	return SwipePattern{
		DominantColors:   []string{},
		PreferredStyles:  []string{},
		ArchetypeWeights: map[string]float64{},
		TopArchetypes:    []string{},
	}
}

// TopArchetype returns the strongest archetype key, or "" when none.
func (p *SwipePattern) TopArchetype() string {
	if len(p.TopArchetypes) == 0 {
		return ""
	}
	return p.TopArchetypes[0]
}
