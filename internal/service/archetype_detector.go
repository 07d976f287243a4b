package service

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/fitfi/fitfi-server/internal/archetype"
	"github.com/fitfi/fitfi-server/internal/domain"
)

// Signal blend weights. Swipe behavior outranks stated preferences, and
// quiz-only detection deliberately stays at the 0.4 multiplier so its
// absolute scores, and therefore confidence, come out lower.
const (
	quizSignalWeight  = 0.4
	swipeSignalWeight = 0.6
)

// QuizAnswers is the structured subset of onboarding answers the
// pipeline scores. Extra quiz keys are ignored for forward compatibility.
type QuizAnswers struct {
	Style      []string `json:"style,omitempty"`
	Fit        string   `json:"fit,omitempty"`
	Comfort    string   `json:"comfort,omitempty"`
	Goals      []string `json:"goals,omitempty"`
	Occasions  []string `json:"occasions,omitempty"`
	Materials  string   `json:"materials,omitempty"`
	Prints     string   `json:"prints,omitempty"`
	BaseColors string   `json:"base_colors,omitempty"`
}

// SwipeSignals carries swipe-derived evidence into detection.
// Photos are the liked photos only.
type SwipeSignals struct {
	Photos        []*domain.MoodPhoto
	LikedCount    int
	RejectedCount int
}

// ArchetypeDetector scores quiz answers and swipe signals against the
// fixed archetype taxonomy.
type ArchetypeDetector struct {
	logger *slog.Logger
}

// NewArchetypeDetector creates an archetype detector.
func NewArchetypeDetector(logger *slog.Logger) *ArchetypeDetector {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchetypeDetector{logger: logger}
}

// Detect scores every archetype and ranks the results. Swipe evidence
// contributes only when at least one like exists.
func (d *ArchetypeDetector) Detect(quiz QuizAnswers, swipes *SwipeSignals) domain.ArchetypeDetectionResult {
	scores := make([]domain.ArchetypeScore, 0, len(archetype.All()))

	for _, descriptor := range archetype.All() {
		score := 0.0
		var reasons []string

		quizScore, quizReasons := d.analyzeQuiz(quiz, descriptor)
		score += quizScore * quizSignalWeight
		reasons = append(reasons, quizReasons...)

		if swipes != nil && swipes.LikedCount > 0 {
			swipeScore, swipeReasons := d.analyzeSwipes(swipes, descriptor)
			score += swipeScore * swipeSignalWeight
			reasons = append(reasons, swipeReasons...)
		}

		scores = append(scores, domain.ArchetypeScore{
			Archetype: descriptor.Key,
			Score:     math.Round(score*100) / 100,
			Reasons:   reasons,
		})
	}

	// Stable sort keeps taxonomy order as the tie-break.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	primary := scores[0].Archetype
	var secondary archetype.Key
	if len(scores) > 1 && scores[1].Score > 20 {
		secondary = scores[1].Archetype
	}

	confidence := confidenceBucket(scores[0].Score)

	d.logger.Debug("archetype detected",
		"primary", primary,
		"secondary", secondary,
		"score", scores[0].Score,
		"confidence", confidence)

	return domain.ArchetypeDetectionResult{
		Primary:    primary,
		Secondary:  secondary,
		Scores:     scores,
		Confidence: confidence,
	}
}

// QuizScores returns the raw quiz score per weight key, before the 0.4
// blend multiplier. Used to build the quiz component of an embedding.
func (d *ArchetypeDetector) QuizScores(quiz QuizAnswers) map[string]float64 {
	out := make(map[string]float64, len(archetype.All()))
	for _, descriptor := range archetype.All() {
		score, _ := d.analyzeQuiz(quiz, descriptor)
		if score > 0 {
			out[descriptor.WeightKey] = score
		}
	}
	return out
}

// confidenceBucket maps a top score onto the stepwise confidence scale.
// The boundaries are exact and pinned by tests.
func confidenceBucket(score float64) float64 {
	switch {
	case score >= 50:
		return 0.9
	case score >= 35:
		return 0.7
	case score >= 20:
		return 0.5
	default:
		return 0.3
	}
}

//nolint:gocyclo // Flat sum of independent scoring rules, one block per signal.
func (d *ArchetypeDetector) analyzeQuiz(quiz QuizAnswers, descriptor archetype.Descriptor) (float64, []string) {
	score := 0.0
	var reasons []string

	// Style keywords.
	if len(quiz.Style) > 0 {
		keywords := lowerAll(quiz.Style)

		switch descriptor.Key {
		case archetype.Minimalist:
			if anyContains(keywords, "minimalis", "clean", "effen") {
				score += 30
				reasons = append(reasons, "Minimalist style preference")
			}
		case archetype.Streetwear:
			if anyContains(keywords, "street", "urban", "sport", "casual") {
				score += 30
				reasons = append(reasons, "Streetwear/urban style preference")
			}
		case archetype.Athletic:
			if anyContains(keywords, "atleti", "sport", "actief") {
				score += 30
				reasons = append(reasons, "Athletic style preference")
			}
		case archetype.Classic:
			if anyContains(keywords, "klassiek", "classic", "preppy") {
				score += 30
				reasons = append(reasons, "Classic style preference")
			}
		}

		// Secondary mappings: these style words have no archetype of
		// their own and contribute to adjacent ones instead.
		if descriptor.Key == archetype.Classic && anyContains(keywords, "romantic", "romantisch") {
			score += 25
			reasons = append(reasons, "Romantic style preference")
		}
		if anyContains(keywords, "bohemian", "boho") {
			switch descriptor.Key {
			case archetype.AvantGarde:
				score += 30
				reasons = append(reasons, "Bohemian style preference")
			case archetype.SmartCasual:
				score += 10
				reasons = append(reasons, "Bohemian style preference (secondary)")
			}
		}
	}

	// Fit preferences.
	if quiz.Fit != "" {
		fit := strings.ToLower(quiz.Fit)

		for _, silhouette := range descriptor.Silhouettes {
			if strings.Contains(fit, silhouette) {
				score += 15
				reasons = append(reasons, "Fit matches: "+fit)
				break
			}
		}

		if strings.Contains(fit, "oversized") || strings.Contains(fit, "loose") || strings.Contains(fit, "relaxed") {
			if descriptor.Key == archetype.Streetwear || descriptor.Key == archetype.AvantGarde {
				score += 20
				reasons = append(reasons, "Oversized fit preference")
			}
		}

		if strings.Contains(fit, "slim") || strings.Contains(fit, "tailored") {
			if descriptor.Key == archetype.Minimalist || descriptor.Key == archetype.Classic {
				score += 15
				reasons = append(reasons, "Slim/tailored fit preference")
			}
		}
	}

	// Goals and occasions carry the same keyword vocabulary.
	goals := lowerAll(append(append([]string{}, quiz.Goals...), quiz.Occasions...))
	if len(goals) > 0 {
		if anyContains(goals, "sport", "actief") {
			if descriptor.Key == archetype.Athletic || descriptor.Key == archetype.Streetwear {
				score += 15
				reasons = append(reasons, "Athletic/active goals")
			}
		}

		if anyContains(goals, "werk", "office", "professioneel") {
			if descriptor.Key == archetype.SmartCasual || descriptor.Key == archetype.Classic {
				score += 15
				reasons = append(reasons, "Professional/work goals")
			}
		}

		if anyContains(goals, "minimal", "timeless", "tijdloos") {
			if descriptor.Key == archetype.Minimalist {
				score += 20
				reasons = append(reasons, "Minimalist/timeless goals")
			}
		}
	}

	// Materials.
	if quiz.Materials != "" {
		mat := strings.ToLower(quiz.Materials)

		if strings.Contains(mat, "tech") && descriptor.Key == archetype.Athletic {
			score += 10
			reasons = append(reasons, "Tech material preference")
		}
		if strings.Contains(mat, "fleece") && descriptor.Key == archetype.Streetwear {
			score += 10
			reasons = append(reasons, "Fleece material preference")
		}
	}

	// Prints.
	if quiz.Prints != "" {
		prints := strings.ToLower(quiz.Prints)

		if strings.Contains(prints, "effen") && descriptor.Key == archetype.Minimalist {
			score += 10
			reasons = append(reasons, "Solid/plain preference")
		}
		if strings.Contains(prints, "statement") && descriptor.Key == archetype.Streetwear {
			score += 10
			reasons = append(reasons, "Statement prints preference")
		}
	}

	return score, reasons
}

func (d *ArchetypeDetector) analyzeSwipes(swipes *SwipeSignals, descriptor archetype.Descriptor) (float64, []string) {
	score := 0.0
	var reasons []string

	// Count style and mood tag occurrences across liked photos.
	tagCounts := map[string]int{}
	for _, photo := range swipes.Photos {
		for _, tag := range photo.StyleTags {
			tagCounts[strings.ToLower(tag)]++
		}
		for _, tag := range photo.MoodTags {
			tagCounts[strings.ToLower(tag)]++
		}
	}

	matchCount := 0
	for _, tag := range descriptor.SwipeTags {
		matchCount += tagCounts[tag]
	}
	if matchCount > 0 {
		score += math.Min(float64(matchCount)*15, 40)
		reasons = append(reasons, fmt.Sprintf("%s tags: %d", descriptor.Dutch, matchCount))
	}

	// Archetype-specific bonus signals.
	switch descriptor.Key {
	case archetype.Minimalist:
		neutralCount := 0
		for _, photo := range swipes.Photos {
			for _, c := range photo.DominantColors {
				name := describeColor(c)
				if strings.Contains(name, "zwart") || strings.Contains(name, "wit") || strings.Contains(name, "grijs") {
					neutralCount++
				}
			}
		}
		if neutralCount >= 2 {
			score += 20
			reasons = append(reasons, "Neutral color palette (zwart/wit/grijs)")
		}
	case archetype.Streetwear:
		if tagCounts["oversized"] > 0 || tagCounts["loose"] > 0 || tagCounts["boxy"] > 0 {
			score += 20
			reasons = append(reasons, "Oversized silhouette preference")
		}
	}

	// Direct archetype weights stored on the photos.
	weightSum := 0.0
	for _, photo := range swipes.Photos {
		weightSum += photo.WeightFor(descriptor.WeightKey)
	}
	if weightSum > 0 {
		score += math.Min(weightSum*10, 30)
		reasons = append(reasons, fmt.Sprintf("Archetype weight match: %g", weightSum))
	}

	return score, reasons
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// anyContains reports whether any value contains any of the substrings.
func anyContains(values []string, substrings ...string) bool {
	for _, v := range values {
		for _, sub := range substrings {
			if strings.Contains(v, sub) {
				return true
			}
		}
	}
	return false
}
