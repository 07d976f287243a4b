package service

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/fitfi/fitfi-server/internal/archetype"
	"github.com/fitfi/fitfi-server/internal/domain"
)

// preferredShare is the fraction of an adaptive batch biased toward the
// detected archetype; the remainder stays exploratory.
const preferredShare = 0.6

// AdaptiveLoader selects the next batch of mood photos to show,
// biased toward the detected archetype while preserving exploration.
// Randomness is injected so batch composition is reproducible in tests.
//
// One loader serves all sessions; rand.Rand is not safe for concurrent
// use, so every draw from rng goes through mu.
type AdaptiveLoader struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger *slog.Logger
}

// NewAdaptiveLoader creates an adaptive photo loader.
func NewAdaptiveLoader(rng *rand.Rand, logger *slog.Logger) *AdaptiveLoader {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AdaptiveLoader{rng: rng, logger: logger}
}

// AdaptiveLoadRequest carries the inputs for one batch selection.
type AdaptiveLoadRequest struct {
	Pattern    domain.SwipePattern
	ExcludeIDs []string
	Count      int
	AllPhotos  []*domain.MoodPhoto
}

// LoadAdaptivePhotos picks the next batch. Without an adaptation signal
// the whole batch is uniform random exploration. With one, a preferred
// slice (60% of the batch, rounded up) is filled from photos weighted
// toward the top archetype or an adjacent one, strongest first, and the
// discovery slice absorbs any shortfall with random picks.
func (l *AdaptiveLoader) LoadAdaptivePhotos(req AdaptiveLoadRequest) []*domain.MoodPhoto {
	if req.Count <= 0 {
		return []*domain.MoodPhoto{}
	}

	excluded := make(map[string]bool, len(req.ExcludeIDs))
	for _, id := range req.ExcludeIDs {
		excluded[id] = true
	}

	pool := make([]*domain.MoodPhoto, 0, len(req.AllPhotos))
	for _, photo := range req.AllPhotos {
		if photo != nil && !excluded[photo.ID] {
			pool = append(pool, photo)
		}
	}

	top := req.Pattern.TopArchetype()
	if !req.Pattern.ShouldAdapt || top == "" {
		return l.pickRandom(pool, req.Count)
	}

	related := map[string]bool{top: true}
	for _, key := range archetype.SimilarTo(top) {
		related[key] = true
	}

	var preferred []*domain.MoodPhoto
	for _, photo := range pool {
		for key, weight := range photo.ArchetypeWeights {
			if weight > 0 && related[key] {
				preferred = append(preferred, photo)
				break
			}
		}
	}

	sort.SliceStable(preferred, func(i, j int) bool {
		return preferred[i].WeightFor(top) > preferred[j].WeightFor(top)
	})

	preferredCount := int(math.Ceil(float64(req.Count) * preferredShare))
	if preferredCount > len(preferred) {
		preferredCount = len(preferred)
	}
	preferred = preferred[:preferredCount]

	chosen := make(map[string]bool, len(preferred))
	for _, photo := range preferred {
		chosen[photo.ID] = true
	}

	remaining := make([]*domain.MoodPhoto, 0, len(pool))
	for _, photo := range pool {
		if !chosen[photo.ID] {
			remaining = append(remaining, photo)
		}
	}

	// The discovery slice absorbs any preferred shortfall.
	discovery := l.pickRandom(remaining, req.Count-len(preferred))

	result := append(preferred, discovery...)
	if len(result) > req.Count {
		result = result[:req.Count]
	}

	l.logger.Debug("adaptive batch selected",
		"archetype", top,
		"preferred", len(preferred),
		"discovery", len(discovery))

	return result
}

// adaptationPhrasings are the message templates for adaptation insights;
// %s is replaced with the Dutch archetype name.
//
//nolint:gochecknoglobals // Static copy table
var adaptationPhrasings = []string{
	"Ik zie een duidelijke voorkeur voor %s, de volgende looks spelen daarop in.",
	"Jouw smaak neigt naar %s. Ik laat je meer van die stijl zien.",
	"Op basis van je swipes kies ik nu meer %s voor je uit.",
	"%s past goed bij je. De volgende foto's sluiten daarop aan.",
}

// GenerateAdaptationInsight returns a user-facing message naming the
// detected archetype, drawn uniformly from a fixed phrasing pool, or ""
// when no adaptation is active.
func (l *AdaptiveLoader) GenerateAdaptationInsight(pattern domain.SwipePattern) string {
	top := pattern.TopArchetype()
	if !pattern.ShouldAdapt || top == "" {
		return ""
	}

	name := top
	if d, ok := archetype.ByWeightKey(top); ok {
		name = d.Dutch
	}

	l.mu.Lock()
	template := adaptationPhrasings[l.rng.Intn(len(adaptationPhrasings))]
	l.mu.Unlock()

	return fmt.Sprintf(template, name)
}

func (l *AdaptiveLoader) pickRandom(pool []*domain.MoodPhoto, n int) []*domain.MoodPhoto {
	if n <= 0 || len(pool) == 0 {
		return []*domain.MoodPhoto{}
	}

	shuffled := make([]*domain.MoodPhoto, len(pool))
	copy(shuffled, pool)

	l.mu.Lock()
	l.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	l.mu.Unlock()

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
