package service

import (
	"fmt"
	"strings"

	"github.com/fitfi/fitfi-server/internal/color"
	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/normalize"
)

// SwipeInsightSummary aggregates what a user's liked photos say about
// their taste, in the Dutch vocabulary the client renders directly.
type SwipeInsightSummary struct {
	FavoriteCategories []string `json:"favorite_categories"`
	PreferredPatterns  []string `json:"preferred_patterns"`
	PreferredColors    []string `json:"preferred_colors"`
	StyleNotes         []string `json:"style_notes"`
	Silhouettes        []string `json:"silhouettes"`
	Materials          []string `json:"materials"`
}

// occasionLabels humanizes photo occasion tokens into category names.
//
//nolint:gochecknoglobals // Static copy table
var occasionLabels = map[string]string{
	"casual-dag-uit": "casual dagoutfits",
	"casual":         "casual dagoutfits",
	"kantoor":        "kantoor looks",
	"work":           "kantoor looks",
	"avond":          "avondkleding",
	"sport":          "sportieve looks",
	"formeel":        "formele outfits",
	"weekend":        "weekend outfits",
}

// patternLabels maps style-tag fragments onto Dutch pattern names.
// Matched by substring so "striped-shirt" and "gestreepte blouse" both
// land on "gestreept".
//
//nolint:gochecknoglobals // Static copy table
var patternLabels = []struct{ fragment, dutch string }{
	{"effen", "effen"},
	{"solid", "effen"},
	{"gestreept", "gestreept"},
	{"striped", "gestreept"},
	{"geruit", "geruit"},
	{"checked", "geruit"},
	{"print", "geprint"},
	{"textur", "getextureerd"},
	{"graf", "grafische prints"},
	{"graphic", "grafische prints"},
}

// Silhouette and material keywords scanned for in style tags.
//
//nolint:gochecknoglobals // Static vocabularies
var (
	silhouetteKeywords = []string{
		"slim", "fitted", "tailored", "relaxed", "loose",
		"oversized", "boxy", "straight", "wide", "cropped",
	}
	materialKeywords = []string{
		"katoen", "wol", "leer", "denim", "linnen",
		"tech", "fleece", "mesh", "canvas", "suede",
	}
)

// ExtractSwipeInsights distills the liked photos from a swipe session
// into concrete preferences: categories from photo occasions, patterns,
// silhouettes and materials from style tags, colors through the Dutch
// color vocabulary, and style notes from mood tags.
func ExtractSwipeInsights(photos []*domain.MoodPhoto, swipes []*domain.StyleSwipe) SwipeInsightSummary {
	byID := make(map[string]*domain.MoodPhoto, len(photos))
	for _, photo := range photos {
		if photo != nil {
			byID[photo.ID] = photo
		}
	}

	categories := newCounter()
	patterns := newCounter()
	colors := newCounter()
	notes := newCounter()
	silhouettes := newCounter()
	materials := newCounter()

	for _, swipe := range swipes {
		if swipe == nil || !swipe.Liked() {
			continue
		}
		photo, ok := byID[swipe.PhotoID]
		if !ok {
			continue
		}

		if photo.Occasion != "" {
			categories.add(humanizeOccasion(photo.Occasion))
		}

		for _, tag := range photo.StyleTags {
			t := normalize.Token(tag)
			for _, p := range patternLabels {
				if strings.Contains(t, p.fragment) {
					patterns.add(p.dutch)
					break
				}
			}
			for _, keyword := range silhouetteKeywords {
				if strings.Contains(t, keyword) {
					silhouettes.add(keyword)
					break
				}
			}
			for _, keyword := range materialKeywords {
				if strings.Contains(t, keyword) {
					materials.add(keyword)
					break
				}
			}
		}

		for _, c := range photo.DominantColors {
			colors.add(color.Normalize(c))
		}
		for _, mood := range photo.MoodTags {
			notes.add(normalize.Token(mood))
		}
	}

	return SwipeInsightSummary{
		FavoriteCategories: categories.top(3),
		PreferredPatterns:  patterns.top(3),
		PreferredColors:    colors.top(5),
		StyleNotes:         notes.top(4),
		Silhouettes:        silhouettes.top(2),
		Materials:          materials.top(2),
	}
}

func humanizeOccasion(occasion string) string {
	t := normalize.Token(occasion)
	if label, ok := occasionLabels[t]; ok {
		return label
	}
	return t
}

// materialPhrases renders a material keyword as a narrative fragment.
//
//nolint:gochecknoglobals // Static copy table
var materialPhrases = map[string]string{
	"katoen": "natuurlijke stoffen zoals katoen",
	"wol":    "kwalitatieve materialen zoals wol",
	"tech":   "technische, functionele materialen",
	"leer":   "luxe materialen zoals leer",
	"linnen": "luchtige, natuurlijke stoffen",
	"fleece": "zachte, comfortabele materialen",
	"denim":  "robuuste, veelzijdige denim",
}

//nolint:gochecknoglobals // Static copy table
var silhouettePhrases = map[string]string{
	"slim":      "Je verkiest slimme, getailleerde silhouetten",
	"relaxed":   "Je waardeert comfortabele, relaxed pasvormen",
	"oversized": "Je houdt van oversized, losse silhouetten",
	"tailored":  "Je waardeert goed gesneden, tailored pieces",
	"boxy":      "Je houdt van boxy, moderne silhouetten",
	"fitted":    "Je kiest voor fitted, body-conscious silhouetten",
}

// GenerateStyleNarrative turns an insight summary into at most four
// user-facing sentences describing the taste the swipes revealed.
func GenerateStyleNarrative(summary SwipeInsightSummary) []string {
	narrative := make([]string, 0, 4)

	if len(summary.FavoriteCategories) > 0 {
		cats := summary.FavoriteCategories
		if len(cats) > 2 {
			cats = cats[:2]
		}
		narrative = append(narrative,
			fmt.Sprintf("Je hebt een voorkeur voor %s", strings.Join(cats, " en ")))
	}

	if len(summary.PreferredPatterns) > 0 {
		switch p := summary.PreferredPatterns[0]; p {
		case "effen":
			narrative = append(narrative, "Je houdt van effen stoffen zonder opvallende prints")
		case "gestreept":
			narrative = append(narrative, "Je waardeert subtiele strepen en geometrische patronen")
		default:
			narrative = append(narrative, fmt.Sprintf("Je houdt van %s patronen", p))
		}
	}

	if len(summary.Silhouettes) > 0 {
		if phrase, ok := silhouettePhrases[summary.Silhouettes[0]]; ok {
			narrative = append(narrative, phrase)
		}
	}

	if len(summary.Materials) > 0 {
		if phrase, ok := materialPhrases[summary.Materials[0]]; ok {
			narrative = append(narrative, "Je waardeert "+phrase)
		}
	}

	if len(narrative) < 4 && len(summary.PreferredColors) > 0 {
		if allNeutralColors(summary.PreferredColors) {
			narrative = append(narrative, "Je houdt van neutrale, veelzijdige kleuren")
		} else if hasBoldColor(summary.PreferredColors) {
			narrative = append(narrative, "Je bent niet bang voor kleur in je outfits")
		}
	}

	if len(narrative) > 4 {
		narrative = narrative[:4]
	}
	return narrative
}

func allNeutralColors(colors []string) bool {
	neutrals := map[string]bool{"zwart": true, "wit": true, "grijs": true, "navy": true}
	checked := colors
	if len(checked) > 3 {
		checked = checked[:3]
	}
	for _, c := range checked {
		if !neutrals[c] {
			return false
		}
	}
	return true
}

func hasBoldColor(colors []string) bool {
	for _, c := range colors {
		switch c {
		case "rood", "blauw", "groen":
			return true
		}
	}
	return false
}
