package color

import "math"

// HSL is a color in hue/saturation/lightness space. Hue is in degrees
// (0-360), saturation and lightness in percent (0-100).
type HSL struct {
	H int
	S int
	L int
}

// Harmony levels returned by ValidateOutfitColors.
const (
	HarmonyExcellent  = "excellent"
	HarmonyGood       = "good"
	HarmonyAcceptable = "acceptable"
	HarmonyPoor       = "poor"
)

// HarmonyResult scores how well an outfit's colors work together.
type HarmonyResult struct {
	Score       int      `json:"score"`
	Harmony     string   `json:"harmony"`
	Explanation string   `json:"explanation"`
	Tips        []string `json:"tips,omitempty"`
}

// RGBToHSL converts an RGB color to HSL space, rounded to integers.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	h := 0.0
	s := 0.0
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
			h /= 6
		case g:
			h = ((b-r)/d + 2) / 6
		case b:
			h = ((r-g)/d + 4) / 6
		}
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// areComplementary reports whether two hues sit opposite on the color
// wheel (~180 degrees apart, 30 degrees of slack).
func areComplementary(a, b HSL) bool {
	diff := hueDiff(a, b)
	return diff > 150 && diff < 210
}

// areAnalogous reports whether two hues are adjacent (within 60 degrees).
func areAnalogous(a, b HSL) bool {
	return hueDiff(a, b) < 60
}

// areMonochromatic reports whether two colors share a hue (within 15
// degrees), differing only in lightness.
func areMonochromatic(a, b HSL) bool {
	return hueDiff(a, b) < 15
}

func hueDiff(a, b HSL) int {
	diff := a.H - b.H
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// isNeutralHSL treats low-saturation colors (black, white, gray, beige)
// as neutral.
func isNeutralHSL(c HSL) bool {
	return c.S < 20
}

// ValidateOutfitColors scores an outfit's dominant colors (hex values)
// against classic color-wheel harmony schemes. Neutrals always pass.
// Two chromatic colors are checked for a monochromatic, analogous, or
// complementary relationship; larger palettes are scored by the
// fraction of harmonious pairs. Unparseable values are skipped.
func ValidateOutfitColors(dominantColors []string) HarmonyResult {
	if len(dominantColors) < 2 {
		return HarmonyResult{
			Score:       50,
			Harmony:     HarmonyAcceptable,
			Explanation: "Insufficient color data for analysis",
		}
	}

	hslColors := make([]HSL, 0, len(dominantColors))
	for _, hex := range dominantColors {
		if rgb, ok := ParseHex(hex); ok {
			hslColors = append(hslColors, RGBToHSL(rgb))
		}
	}
	if len(hslColors) < 2 {
		return HarmonyResult{
			Score:       50,
			Harmony:     HarmonyAcceptable,
			Explanation: "Could not analyze colors",
		}
	}

	neutralCount := 0
	chromatic := make([]HSL, 0, len(hslColors))
	for _, c := range hslColors {
		if isNeutralHSL(c) {
			neutralCount++
		} else {
			chromatic = append(chromatic, c)
		}
	}

	// Neutrals always work well.
	if neutralCount >= len(hslColors)-1 {
		return HarmonyResult{
			Score:       90,
			Harmony:     HarmonyExcellent,
			Explanation: "Neutrale kleuren harmoniëren perfect. Tijdloos en elegant.",
		}
	}

	score := 50
	explanation := ""
	var tips []string

	switch {
	case len(chromatic) == 2:
		c1, c2 := chromatic[0], chromatic[1]

		switch {
		case areMonochromatic(c1, c2):
			score = 85
			explanation = "Monochromatisch schema: verschillende tinten van dezelfde kleur."
		case areAnalogous(c1, c2):
			score = 80
			explanation = "Analoog schema: aangrenzende kleuren harmoniëren natuurlijk."
		case areComplementary(c1, c2):
			score = 75
			explanation = "Complementair schema: contrast dat aandacht trekt."
			tips = append(tips, "Overweeg een neutrale tint toe te voegen voor balans")
		default:
			score = 60
			explanation = "Kleurcombinatie werkt, maar geen klassiek harmonieschema."
			tips = append(tips, "Voeg een neutrale kleur toe voor meer samenhang")
		}

	case len(chromatic) > 2:
		harmonious := 0
		for i := 0; i < len(hslColors)-1; i++ {
			for j := i + 1; j < len(hslColors); j++ {
				c1, c2 := hslColors[i], hslColors[j]
				if isNeutralHSL(c1) || isNeutralHSL(c2) {
					harmonious++
					continue
				}
				if areMonochromatic(c1, c2) || areAnalogous(c1, c2) || areComplementary(c1, c2) {
					harmonious++
				}
			}
		}

		totalPairs := len(hslColors) * (len(hslColors) - 1) / 2
		ratio := float64(harmonious) / float64(totalPairs)

		switch {
		case ratio > 0.7:
			score = 85
			explanation = "Uitstekende kleurbalans met meerdere harmonieuze combinaties."
		case ratio > 0.5:
			score = 70
			explanation = "Goede kleurmix, de meeste combinaties werken goed samen."
		default:
			score = 55
			explanation = "Veel kleuren samen kan overweldigend zijn."
			tips = append(tips,
				"Overweeg minder kleuren te gebruiken",
				"Voeg meer neutrale tinten toe voor balans")
		}
	}

	return HarmonyResult{
		Score:       score,
		Harmony:     harmonyLevel(score),
		Explanation: explanation,
		Tips:        tips,
	}
}

func harmonyLevel(score int) string {
	switch {
	case score >= 80:
		return HarmonyExcellent
	case score >= 70:
		return HarmonyGood
	case score >= 55:
		return HarmonyAcceptable
	default:
		return HarmonyPoor
	}
}
