package service

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adaptivePool(n int, weights map[string]float64) []*domain.MoodPhoto {
	photos := make([]*domain.MoodPhoto, 0, n)
	for i := 0; i < n; i++ {
		photos = append(photos, &domain.MoodPhoto{
			ID:               fmt.Sprintf("photo-%02d", i),
			ArchetypeWeights: weights,
			Active:           true,
		})
	}
	return photos
}

func adaptingPattern(top string) domain.SwipePattern {
	return domain.SwipePattern{
		TopArchetypes:    []string{top},
		ArchetypeWeights: map[string]float64{top: 2.5},
		ShouldAdapt:      true,
	}
}

func TestLoadAdaptivePhotosDeterministicWithSeed(t *testing.T) {
	pool := adaptivePool(20, map[string]float64{"minimal": 0.5})
	req := AdaptiveLoadRequest{
		Pattern:   adaptingPattern("minimal"),
		Count:     6,
		AllPhotos: pool,
	}

	first := NewAdaptiveLoader(rand.New(rand.NewSource(42)), nil).LoadAdaptivePhotos(req)
	second := NewAdaptiveLoader(rand.New(rand.NewSource(42)), nil).LoadAdaptivePhotos(req)

	require.Len(t, first, 6)
	assert.Equal(t, first, second)
}

func TestLoadAdaptivePhotosPreferredSliceLeadsBatch(t *testing.T) {
	// Three photos weighted toward minimal, the rest unrelated.
	pool := []*domain.MoodPhoto{
		{ID: "min-strong", ArchetypeWeights: map[string]float64{"minimal": 0.9}},
		{ID: "min-mid", ArchetypeWeights: map[string]float64{"minimal": 0.6}},
		{ID: "min-weak", ArchetypeWeights: map[string]float64{"minimal": 0.2}},
		{ID: "avant-1", ArchetypeWeights: map[string]float64{"avant_garde": 0.8}},
		{ID: "avant-2", ArchetypeWeights: map[string]float64{"avant_garde": 0.7}},
	}

	loader := NewAdaptiveLoader(rand.New(rand.NewSource(1)), nil)
	result := loader.LoadAdaptivePhotos(AdaptiveLoadRequest{
		Pattern:   adaptingPattern("minimal"),
		Count:     5,
		AllPhotos: pool,
	})

	require.Len(t, result, 5)
	// ceil(5*0.6)=3 preferred slots, strongest weight first.
	assert.Equal(t, "min-strong", result[0].ID)
	assert.Equal(t, "min-mid", result[1].ID)
	assert.Equal(t, "min-weak", result[2].ID)
}

func TestLoadAdaptivePhotosHonorsExclusions(t *testing.T) {
	pool := adaptivePool(10, map[string]float64{"minimal": 0.5})

	loader := NewAdaptiveLoader(rand.New(rand.NewSource(7)), nil)
	result := loader.LoadAdaptivePhotos(AdaptiveLoadRequest{
		Pattern:    adaptingPattern("minimal"),
		ExcludeIDs: []string{"photo-00", "photo-01", "photo-02"},
		Count:      10,
		AllPhotos:  pool,
	})

	assert.Len(t, result, 7)
	for _, photo := range result {
		assert.NotContains(t, []string{"photo-00", "photo-01", "photo-02"}, photo.ID)
	}
}

func TestLoadAdaptivePhotosRandomWhenNotAdapting(t *testing.T) {
	pool := adaptivePool(10, map[string]float64{"minimal": 0.5})

	loader := NewAdaptiveLoader(rand.New(rand.NewSource(3)), nil)
	result := loader.LoadAdaptivePhotos(AdaptiveLoadRequest{
		Pattern:   domain.EmptySwipePattern(),
		Count:     4,
		AllPhotos: pool,
	})

	assert.Len(t, result, 4)
	seen := map[string]bool{}
	for _, photo := range result {
		assert.False(t, seen[photo.ID], "batch must not repeat photos")
		seen[photo.ID] = true
	}
}

func TestLoadAdaptivePhotosShortfallAbsorbedByDiscovery(t *testing.T) {
	// Only one photo relates to the top archetype; discovery fills the rest.
	pool := []*domain.MoodPhoto{
		{ID: "min-only", ArchetypeWeights: map[string]float64{"minimal": 0.9}},
		{ID: "avant-1", ArchetypeWeights: map[string]float64{"avant_garde": 0.8}},
		{ID: "avant-2", ArchetypeWeights: map[string]float64{"avant_garde": 0.7}},
		{ID: "avant-3", ArchetypeWeights: map[string]float64{"avant_garde": 0.6}},
	}

	loader := NewAdaptiveLoader(rand.New(rand.NewSource(11)), nil)
	result := loader.LoadAdaptivePhotos(AdaptiveLoadRequest{
		Pattern:   adaptingPattern("minimal"),
		Count:     4,
		AllPhotos: pool,
	})

	require.Len(t, result, 4)
	assert.Equal(t, "min-only", result[0].ID)
}

func TestLoadAdaptivePhotosEmptyInputs(t *testing.T) {
	loader := NewAdaptiveLoader(rand.New(rand.NewSource(1)), nil)

	assert.Empty(t, loader.LoadAdaptivePhotos(AdaptiveLoadRequest{Count: 0, AllPhotos: adaptivePool(3, nil)}))
	assert.Empty(t, loader.LoadAdaptivePhotos(AdaptiveLoadRequest{Count: 5}))
}

func TestAdaptiveLoaderConcurrentSessions(t *testing.T) {
	// One loader is shared by every session, so concurrent callers must
	// not trip the race detector on the shared random source.
	loader := NewAdaptiveLoader(rand.New(rand.NewSource(9)), nil)
	pool := adaptivePool(12, map[string]float64{"minimal": 0.5})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				loader.GenerateAdaptationInsight(adaptingPattern("minimal"))
				loader.LoadAdaptivePhotos(AdaptiveLoadRequest{
					Pattern:   adaptingPattern("minimal"),
					Count:     4,
					AllPhotos: pool,
				})
			}
		}()
	}
	wg.Wait()
}

func TestGenerateAdaptationInsight(t *testing.T) {
	loader := NewAdaptiveLoader(rand.New(rand.NewSource(5)), nil)

	assert.Empty(t, loader.GenerateAdaptationInsight(domain.EmptySwipePattern()))

	msg := loader.GenerateAdaptationInsight(adaptingPattern("streetwear"))
	assert.Contains(t, msg, "streetstyle")
}
