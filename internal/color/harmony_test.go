package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{"red", RGB{255, 0, 0}, HSL{0, 100, 50}},
		{"orange", RGB{255, 128, 0}, HSL{30, 100, 50}},
		{"cyan", RGB{0, 255, 255}, HSL{180, 100, 50}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 100}},
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"gray", RGB{128, 128, 128}, HSL{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.rgb))
		})
	}
}

func TestValidateOutfitColors_InsufficientData(t *testing.T) {
	result := ValidateOutfitColors([]string{"#FF0000"})
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, HarmonyAcceptable, result.Harmony)
	assert.Equal(t, "Insufficient color data for analysis", result.Explanation)

	// Enough values, but none parse as hex.
	result = ValidateOutfitColors([]string{"rood", "blauw"})
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, "Could not analyze colors", result.Explanation)
}

func TestValidateOutfitColors_AllNeutrals(t *testing.T) {
	result := ValidateOutfitColors([]string{"#FFFFFF", "#000000", "#808080"})
	assert.Equal(t, 90, result.Score)
	assert.Equal(t, HarmonyExcellent, result.Harmony)
	assert.Empty(t, result.Tips)
}

func TestValidateOutfitColors_TwoColorSchemes(t *testing.T) {
	tests := []struct {
		name      string
		colors    []string
		wantScore int
		wantLevel string
		wantTips  int
	}{
		{"monochromatic reds", []string{"#FF0000", "#CC0000"}, 85, HarmonyExcellent, 0},
		{"analogous red orange", []string{"#FF0000", "#FF8000"}, 80, HarmonyExcellent, 0},
		{"complementary red cyan", []string{"#FF0000", "#00FFFF"}, 75, HarmonyGood, 1},
		{"clash red blue", []string{"#FF0000", "#0000FF"}, 60, HarmonyAcceptable, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateOutfitColors(tt.colors)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantLevel, result.Harmony)
			assert.Len(t, result.Tips, tt.wantTips)
			assert.NotEmpty(t, result.Explanation)
		})
	}
}

func TestValidateOutfitColors_NeutralsDoNotCountAsChromatic(t *testing.T) {
	// White is filtered out; the remaining pair is analogous.
	result := ValidateOutfitColors([]string{"#FF0000", "#FF8000", "#FFFFFF"})
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, HarmonyExcellent, result.Harmony)
}

func TestValidateOutfitColors_MultiColorRatio(t *testing.T) {
	// Hues 0, 30, 60: two of three pairs are analogous.
	result := ValidateOutfitColors([]string{"#FF0000", "#FF8000", "#FFFF00"})
	require.Equal(t, 70, result.Score)
	assert.Equal(t, HarmonyGood, result.Harmony)

	// Hues 0, 120, 240 share no scheme at all.
	result = ValidateOutfitColors([]string{"#FF0000", "#00FF00", "#0000FF"})
	assert.Equal(t, 55, result.Score)
	assert.Equal(t, HarmonyAcceptable, result.Harmony)
	assert.Len(t, result.Tips, 2)
}

func TestValidateOutfitColors_BareHex(t *testing.T) {
	result := ValidateOutfitColors([]string{"FF0000", "CC0000"})
	assert.Equal(t, 85, result.Score)
}
