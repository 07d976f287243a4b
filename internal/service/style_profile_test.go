package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGenerateStyleProfileQuizOnlyEarthTones(t *testing.T) {
	g := NewStyleProfileGenerator(nil, NewArchetypeDetector(nil), nil)

	result := g.GenerateStyleProfile(context.Background(), QuizAnswers{BaseColors: "earth"}, "", "")

	assert.Equal(t, domain.TemperatureWarm, result.ColorProfile.Temperature)
	assert.Equal(t, domain.DataSourceQuizOnly, result.DataSource)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
	assert.Equal(t, "herfst", result.ColorProfile.Season)
}

func TestGenerateStyleProfileFallback(t *testing.T) {
	g := NewStyleProfileGenerator(nil, NewArchetypeDetector(nil), nil)

	result := g.GenerateStyleProfile(context.Background(), QuizAnswers{}, "", "")

	assert.Equal(t, domain.DataSourceFallback, result.DataSource)
	assert.Equal(t, domain.TemperatureNeutral, result.ColorProfile.Temperature)
	assert.Equal(t, "Soft Cool Tonals (neutraal)", result.ColorProfile.PaletteName)
	assert.Equal(t, "zomer", result.ColorProfile.Season)
	assert.Equal(t, domain.LevelLow, result.ColorProfile.Contrast)
	assert.Equal(t, domain.ChromaSoft, result.ColorProfile.Chroma)
}

func TestGenerateStyleProfileQuizAndSwipes(t *testing.T) {
	s := setupServiceStore(t)
	ctx := context.Background()

	photo := &domain.MoodPhoto{
		ID:               "photo-mono",
		ImageURL:         "https://cdn.example.com/mono.jpg",
		StyleTags:        []string{"minimal", "clean"},
		ArchetypeWeights: map[string]float64{"minimal": 0.9},
		DominantColors:   []string{"#000000", "#FFFFFF"},
		Active:           true,
	}
	require.NoError(t, s.UpsertMoodPhoto(ctx, photo))
	require.NoError(t, s.SaveSwipe(ctx, &domain.StyleSwipe{
		ID:        "swipe-1",
		SessionID: "sess-mono",
		PhotoID:   "photo-mono",
		Direction: domain.SwipeRight,
	}))

	g := NewStyleProfileGenerator(s, NewArchetypeDetector(nil), nil)
	result := g.GenerateStyleProfile(ctx, QuizAnswers{Style: []string{"minimalistisch"}}, "", "sess-mono")

	assert.Equal(t, domain.DataSourceQuizAndSwipes, result.DataSource)
	assert.Equal(t, "minimalistisch", result.Archetype)
	assert.Equal(t, domain.ChromaBold, result.ColorProfile.Chroma)
	assert.Equal(t, domain.LevelHigh, result.ColorProfile.Contrast)
	assert.InDelta(t, 1.0, result.Confidence, 1e-9)

	// The profile is persisted with its embedding components.
	profile, err := s.GetLatestProfile(ctx, "sess-mono")
	require.NoError(t, err)
	assert.Equal(t, "minimalistisch", profile.Archetype)
	assert.InDelta(t, 0.9, profile.SwipeEmbedding["minimal"], 1e-9)
	assert.Positive(t, profile.QuizEmbedding["minimal"])
}

func TestAnalyzeSwipeColorsMonochrome(t *testing.T) {
	photos := []*domain.MoodPhoto{
		{DominantColors: []string{"#000000", "#FFFFFF"}},
	}

	analysis := analyzeSwipeColors(photos)

	require.NotNil(t, analysis)
	assert.Equal(t, []string{"zwart", "wit"}, analysis.dominantColors)
	assert.Equal(t, domain.ChromaBold, analysis.chroma)
	assert.Equal(t, domain.LevelHigh, analysis.contrast)
}

func TestAnalyzeQuizColorsBuckets(t *testing.T) {
	tests := []struct {
		name        string
		baseColors  string
		temperature string
		isNeutral   bool
	}{
		{"earth tones", "aardse tinten", domain.TemperatureWarm, true},
		{"cool jewel tones", "saffierblauw", domain.TemperatureCool, true},
		{"neutrals", "neutraal", domain.TemperatureCool, true},
		{"pastels", "pastel roze", domain.TemperatureCool, true},
		{"bold", "fel en elektrisch", domain.TemperatureWarm, true},
		{"unrecognized", "paisley", domain.TemperatureNeutral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := analyzeQuizColors(QuizAnswers{BaseColors: tt.baseColors})
			require.NotNil(t, analysis)
			assert.Equal(t, tt.temperature, analysis.temperature)
			assert.Equal(t, tt.isNeutral, analysis.isNeutral)
		})
	}
}

func TestAnalyzeQuizColorsDerivedFromStyle(t *testing.T) {
	bold := analyzeQuizColors(QuizAnswers{Style: []string{"bold statement"}})
	require.NotNil(t, bold)
	assert.Equal(t, domain.TemperatureWarm, bold.temperature)

	minimal := analyzeQuizColors(QuizAnswers{Style: []string{"minimal"}})
	require.NotNil(t, minimal)
	assert.Equal(t, domain.TemperatureCool, minimal.temperature)
	assert.True(t, minimal.isNeutral)

	assert.Nil(t, analyzeQuizColors(QuizAnswers{}))
}

func TestCombineColorDataSwipesWin(t *testing.T) {
	quiz := &quizColorAnalysis{temperature: domain.TemperatureWarm, isNeutral: true}
	swipes := &swipeColorAnalysis{
		dominantColors: []string{"zwart", "wit"},
		temperature:    domain.TemperatureCool,
		chroma:         domain.ChromaBold,
		contrast:       domain.LevelHigh,
	}

	profile := combineColorData(quiz, swipes)

	assert.Equal(t, domain.TemperatureCool, profile.Temperature)
	assert.Equal(t, domain.ChromaBold, profile.Chroma)
	assert.Equal(t, "winter", profile.Season)
	assert.Equal(t, "Monochrome Contrast (koel)", profile.PaletteName)
	assert.Contains(t, profile.Notes, "Zwart als basis kleur voor een sterke statement.")
}

func TestDetermineContrastLevels(t *testing.T) {
	assert.Equal(t, domain.LevelHigh, determineContrast([]string{"zwart", "wit"}))
	assert.Equal(t, domain.LevelMedium, determineContrast([]string{"zwart", "grijs"}))
	assert.Equal(t, domain.LevelLow, determineContrast([]string{"grijs", "beige"}))
	assert.Equal(t, domain.LevelMedium, determineContrast([]string{"wit", "camel"}))
	assert.Equal(t, domain.LevelLow, determineContrast([]string{"camel", "bruin"}))
}
