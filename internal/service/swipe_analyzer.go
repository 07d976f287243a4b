// Package service implements the style-profile inference pipeline:
// swipe analysis, adaptive photo loading, archetype detection, color
// profiling, embedding management, calibration, and the surrounding
// preference and gamification services.
package service

import (
	"log/slog"
	"sort"

	"github.com/fitfi/fitfi-server/internal/color"
	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/normalize"
)

// InsightTrigger classifies what signal produced an analyzer insight.
type InsightTrigger string

// Insight triggers.
const (
	TriggerStyle   InsightTrigger = "style"
	TriggerPattern InsightTrigger = "pattern"
	TriggerSpeed   InsightTrigger = "speed"
	TriggerColor   InsightTrigger = "color"
)

// AnalyzerInsight is one mid-session observation offered to the user.
type AnalyzerInsight struct {
	Message    string         `json:"message"`
	Confidence float64        `json:"confidence"`
	Trigger    InsightTrigger `json:"trigger"`
}

type observation struct {
	photo *domain.MoodPhoto
	swipe *domain.StyleSwipe
}

// SwipeAnalyzer accumulates (photo, swipe) observations for one session
// and derives aggregate signals from them. The pattern is recomputed
// from the full history on every call, so it is a pure function of the
// observations; the only extra state is the insight counter.
//
// One analyzer serves one session. Swiping concurrently from two devices
// is not reconciled here; last write wins at the storage layer.
type SwipeAnalyzer struct {
	observations  []observation
	insightsShown int
	logger        *slog.Logger
}

// NewSwipeAnalyzer creates an analyzer for a fresh swipe session.
func NewSwipeAnalyzer(logger *slog.Logger) *SwipeAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SwipeAnalyzer{logger: logger}
}

// AddSwipe appends one observation. Photos with missing tag or weight
// collections are tolerated; absent collections count as empty.
func (a *SwipeAnalyzer) AddSwipe(photo *domain.MoodPhoto, swipe *domain.StyleSwipe) {
	if photo == nil || swipe == nil {
		return
	}
	a.observations = append(a.observations, observation{photo: photo, swipe: swipe})
}

// Pattern recomputes the aggregate swipe pattern from the full history.
func (a *SwipeAnalyzer) Pattern() domain.SwipePattern {
	total := len(a.observations)
	if total == 0 {
		return domain.EmptySwipePattern()
	}

	var likes []observation
	responseSum := 0
	for _, obs := range a.observations {
		responseSum += obs.swipe.ResponseTimeMs
		if obs.swipe.Liked() {
			likes = append(likes, obs)
		}
	}

	colorCounts := newCounter()
	styleCounts := newCounter()
	archetypeWeights := map[string]float64{}
	for _, obs := range likes {
		for _, c := range obs.photo.DominantColors {
			colorCounts.add(c)
		}
		for _, tag := range obs.photo.StyleTags {
			styleCounts.add(tag)
		}
		for key, weight := range obs.photo.ArchetypeWeights {
			archetypeWeights[key] += weight
		}
	}

	likeRate := float64(len(likes)) / float64(total)
	confidence := float64(total) / 10
	if confidence > 1 {
		confidence = 1
	}

	topArchetypes := topWeightKeys(archetypeWeights, 3)

	// Adapt only when the user has swiped enough and is discriminating,
	// neither liking nor rejecting everything.
	shouldAdapt := total >= 3 &&
		likeRate >= 0.33 &&
		likeRate <= 0.8 &&
		len(topArchetypes) > 0

	return domain.SwipePattern{
		DominantColors:    colorCounts.top(3),
		PreferredStyles:   styleCounts.top(3),
		ArchetypeWeights:  archetypeWeights,
		TopArchetypes:     topArchetypes,
		AvgResponseTimeMs: float64(responseSum) / float64(total),
		Confidence:        confidence,
		LikeRate:          likeRate,
		ShouldAdapt:       shouldAdapt,
	}
}

// GenerateInsight returns at most one insight for the given swipe count.
// Insights fire only at counts 3 and 7, at most twice per analyzer
// lifetime. A matching count without a matching signal is a valid
// no-insight outcome.
func (a *SwipeAnalyzer) GenerateInsight(currentSwipeCount int) *AnalyzerInsight {
	if currentSwipeCount < 3 {
		return nil
	}
	if a.insightsShown >= 2 {
		return nil
	}
	if currentSwipeCount != 3 && currentSwipeCount != 7 {
		return nil
	}

	insight := a.pickInsight(a.Pattern(), currentSwipeCount)
	if insight != nil {
		a.insightsShown++
	}
	return insight
}

func (a *SwipeAnalyzer) pickInsight(pattern domain.SwipePattern, swipeCount int) *AnalyzerInsight {
	// First insight (swipe 3): style preference.
	if swipeCount == 3 && len(pattern.PreferredStyles) > 0 {
		styleDesc := translateStyleTag(pattern.PreferredStyles[0])

		switch {
		case pattern.LikeRate > 0.6:
			return &AnalyzerInsight{
				Message:    "Ik merk dat je houdt van " + styleDesc + " — klopt dat?",
				Confidence: pattern.Confidence,
				Trigger:    TriggerStyle,
			}
		case pattern.LikeRate < 0.4:
			return &AnalyzerInsight{
				Message:    "Je bent selectief — ik zie dat je duidelijk weet wat je wél en niet wilt!",
				Confidence: pattern.Confidence,
				Trigger:    TriggerPattern,
			}
		}
		return nil
	}

	// Second insight (swipe 7): a more refined observation.
	if swipeCount == 7 && len(pattern.PreferredStyles) > 1 {
		style1 := translateStyleTag(pattern.PreferredStyles[0])
		style2 := translateStyleTag(pattern.PreferredStyles[1])

		// Fast swiper is decisive.
		if pattern.AvgResponseTimeMs < 1500 {
			return &AnalyzerInsight{
				Message:    "Je swipet snel en zeker — " + style1 + " met een vleugje " + style2 + " past perfect bij je.",
				Confidence: pattern.Confidence,
				Trigger:    TriggerSpeed,
			}
		}

		// Thoughtful swiper.
		if pattern.AvgResponseTimeMs > 2500 {
			return &AnalyzerInsight{
				Message:    "Je neemt de tijd om details te bekijken. Ik zie een voorkeur voor " + style1 + " en " + style2 + ".",
				Confidence: pattern.Confidence,
				Trigger:    TriggerSpeed,
			}
		}

		// Color-focused fallback.
		if len(pattern.DominantColors) > 0 {
			colorDesc := describeColor(pattern.DominantColors[0])
			return &AnalyzerInsight{
				Message:    "Ik zie dat " + colorDesc + " vaak terugkomt in wat je mooi vindt — rustige tinten en gestructureerde silhouetten?",
				Confidence: pattern.Confidence,
				Trigger:    TriggerColor,
			}
		}
	}

	return nil
}

// InsightsShown reports how many insights this analyzer has produced.
func (a *SwipeAnalyzer) InsightsShown() int {
	return a.insightsShown
}

// Reset clears the history and the insight counter.
func (a *SwipeAnalyzer) Reset() {
	a.observations = nil
	a.insightsShown = 0
}

// styleTagPhrases maps style tags onto the Dutch phrases used in insight
// copy. Unknown tags fall back to the tag with underscores spaced out.
//
//nolint:gochecknoglobals // Static copy table
var styleTagPhrases = map[string]string{
	"scandi_minimal":       "strakke minimalistische looks",
	"italian_smart_casual": "gestructureerde smart casual",
	"street_refined":       "verfijnde streetwear",
	"bohemian":             "bohemian lagen en texturen",
	"preppy":               "klassieke preppy stijl",
	"athleisure":           "sportieve comfort",
	"romantic":             "zachte romantische lijnen",
	"monochrome":           "monochrome elegantie",
	"coastal":              "luchtige coastal vibes",
	"bold":                 "gedurfde statement pieces",
	"minimal":              "minimalistische stukken",
	"classic":              "tijdloze klassiekers",
	"refined":              "verfijnde details",
	"urban":                "urban streetstyle",
	"casual":               "relaxte casual looks",
	"tailored":             "getailleerde snits",
	"elevated":             "elevated basics",
	"contemporary":         "moderne silhouetten",
	"artistic":             "artistieke expressie",
	"layered":              "gelaagde outfits",
	"polished":             "gepolijste looks",
	"sporty":               "sportieve styling",
	"comfortable":          "comfortabele fits",
	"feminine":             "vrouwelijke vormen",
	"soft":                 "zachte lijnen",
	"sophisticated":        "gedistingeerde looks",
	"breezy":               "luchtige stukken",
	"colorful":             "kleurrijke combinaties",
	"statement":            "opvallende items",
}

func translateStyleTag(tag string) string {
	key := normalize.Key(tag)
	if phrase, ok := styleTagPhrases[key]; ok {
		return phrase
	}
	return normalize.Phrase(key)
}

// describeColor turns a stored dominant-color value (hex or name) into
// Dutch insight copy.
func describeColor(value string) string {
	if name := color.Normalize(value); name != "" {
		return name
	}
	return "neutrale kleuren"
}

// counter counts string occurrences while remembering first-seen order
// so equal counts rank by arrival, not map iteration.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) top(n int) []string {
	ranked := make([]string, len(c.order))
	copy(ranked, c.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// topWeightKeys ranks weight-map keys by weight descending, breaking
// ties alphabetically, and returns at most n keys with positive weight.
func topWeightKeys(weights map[string]float64, n int) []string {
	keys := make([]string, 0, len(weights))
	for key, w := range weights {
		if w > 0 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if weights[keys[i]] != weights[keys[j]] {
			return weights[keys[i]] > weights[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
