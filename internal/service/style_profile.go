package service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/fitfi/fitfi-server/internal/archetype"
	"github.com/fitfi/fitfi-server/internal/color"
	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/id"
	"github.com/fitfi/fitfi-server/internal/store"
)

// Color-confidence contributions per signal source.
const (
	quizColorConfidence  = 0.4
	swipeColorConfidence = 0.6
)

// quizColorAnalysis is the quiz-derived partial color analysis.
type quizColorAnalysis struct {
	temperature     string
	isNeutral       bool
	preferredColors []string
}

// swipeColorAnalysis is the swipe-derived partial color analysis.
type swipeColorAnalysis struct {
	dominantColors []string
	temperature    string
	chroma         string
	contrast       string
}

// StyleProfileGenerator orchestrates archetype detection and color
// analysis into a complete style profile, and persists the result.
type StyleProfileGenerator struct {
	store    *store.Store
	detector *ArchetypeDetector
	logger   *slog.Logger
}

// NewStyleProfileGenerator creates a style profile generator.
func NewStyleProfileGenerator(store *store.Store, detector *ArchetypeDetector, logger *slog.Logger) *StyleProfileGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &StyleProfileGenerator{store: store, detector: detector, logger: logger}
}

// GenerateStyleProfile builds a profile from quiz answers and, when an
// identity is given, the identity's swipe history. Persistence is best
// effort: a store failure is logged but never blocks the result.
func (g *StyleProfileGenerator) GenerateStyleProfile(ctx context.Context, quiz QuizAnswers, userID, sessionID string) domain.StyleProfileResult {
	swipes := g.fetchSwipeSignals(ctx, userID, sessionID)

	detection := g.detector.Detect(quiz, swipes)

	quizColors := analyzeQuizColors(quiz)
	var swipeColors *swipeColorAnalysis
	if swipes != nil {
		swipeColors = analyzeSwipeColors(swipes.Photos)
	}

	colorProfile := combineColorData(quizColors, swipeColors)

	confidence := math.Max(colorConfidence(quizColors, swipeColors), detection.Confidence)

	dataSource := domain.DataSourceFallback
	switch {
	case quizColors != nil && swipeColors != nil:
		dataSource = domain.DataSourceQuizAndSwipes
	case quizColors != nil:
		dataSource = domain.DataSourceQuizOnly
	case swipeColors != nil:
		dataSource = domain.DataSourceSwipesOnly
	}

	result := domain.StyleProfileResult{
		Archetype:    archetype.Dutch(detection.Primary),
		ColorProfile: colorProfile,
		Detection:    detection,
		Confidence:   confidence,
		DataSource:   dataSource,
	}
	if detection.Secondary != "" {
		result.SecondaryArchetype = archetype.Dutch(detection.Secondary)
	}

	g.persist(ctx, quiz, userID, sessionID, swipes, result)

	g.logger.Info("style profile generated",
		"archetype", result.Archetype,
		"secondary", result.SecondaryArchetype,
		"temperature", colorProfile.Temperature,
		"palette", colorProfile.PaletteName,
		"confidence", confidence,
		"data_source", dataSource)

	return result
}

// fetchSwipeSignals loads the identity's liked photos. Any failure
// degrades to no swipe signal rather than blocking profile generation.
func (g *StyleProfileGenerator) fetchSwipeSignals(ctx context.Context, userID, sessionID string) *SwipeSignals {
	identity := userID
	if identity == "" {
		identity = sessionID
	}
	if identity == "" || g.store == nil {
		return nil
	}

	liked, err := g.store.GetLikedSwipes(ctx, identity)
	if err != nil {
		g.logger.Warn("fetching liked swipes failed", "identity", identity, "error", err)
		return nil
	}
	if len(liked) == 0 {
		return nil
	}

	photoIDs := make([]string, 0, len(liked))
	for _, swipe := range liked {
		photoIDs = append(photoIDs, swipe.PhotoID)
	}

	photos, err := g.store.GetMoodPhotosByIDs(ctx, photoIDs)
	if err != nil {
		g.logger.Warn("fetching liked photos failed", "identity", identity, "error", err)
		return nil
	}
	if len(photos) == 0 {
		return nil
	}

	return &SwipeSignals{Photos: photos, LikedCount: len(photos)}
}

// persist saves the generated profile with its quiz and swipe embedding
// components for later aggregation.
func (g *StyleProfileGenerator) persist(ctx context.Context, quiz QuizAnswers, userID, sessionID string, swipes *SwipeSignals, result domain.StyleProfileResult) {
	if g.store == nil {
		g.logger.Warn("store unavailable, style profile not persisted")
		return
	}

	profile := domain.NewStyleProfile(id.MustGenerate("prof"), userID, sessionID)
	profile.Archetype = result.Archetype
	profile.SecondaryArchetype = result.SecondaryArchetype
	cp := result.ColorProfile
	profile.ColorProfile = &cp
	profile.Confidence = result.Confidence
	profile.DataSource = result.DataSource
	profile.QuizEmbedding = quizEmbedding(g.detector, quiz)
	profile.SwipeEmbedding = swipeEmbedding(swipes)

	if err := g.store.SaveProfile(ctx, profile); err != nil {
		g.logger.Warn("persisting style profile failed", "profile_id", profile.ID, "error", err)
	}
}

// quizEmbedding scales raw quiz scores into the 0..1 weight range used
// by photo archetype weights.
func quizEmbedding(detector *ArchetypeDetector, quiz QuizAnswers) domain.StyleEmbedding {
	embedding := domain.StyleEmbedding{}
	for key, score := range detector.QuizScores(quiz) {
		embedding[key] = score / 100
	}
	return embedding
}

// swipeEmbedding averages liked-photo archetype weights per key.
func swipeEmbedding(swipes *SwipeSignals) domain.StyleEmbedding {
	embedding := domain.StyleEmbedding{}
	if swipes == nil || len(swipes.Photos) == 0 {
		return embedding
	}
	for _, photo := range swipes.Photos {
		for key, weight := range photo.ArchetypeWeights {
			embedding[key] += weight
		}
	}
	for key := range embedding {
		embedding[key] /= float64(len(swipes.Photos))
	}
	return embedding
}

// analyzeQuizColors maps the categorical color answer through fixed
// keyword buckets. Without a color answer it falls back to deriving a
// register from style and goal answers; with nothing at all it returns
// nil.
func analyzeQuizColors(quiz QuizAnswers) *quizColorAnalysis {
	pref := strings.ToLower(strings.TrimSpace(quiz.BaseColors))

	if pref == "" {
		if len(quiz.Style) == 0 && len(quiz.Goals) == 0 {
			return nil
		}

		analysis := &quizColorAnalysis{temperature: domain.TemperatureNeutral}
		styles := lowerAll(quiz.Style)
		switch {
		case anyContains(styles, "bold", "statement"):
			analysis.temperature = domain.TemperatureWarm
			analysis.preferredColors = []string{"rood", "elektrischblauw", "neongeel"}
		case anyContains(styles, "minimal", "clean"):
			analysis.temperature = domain.TemperatureCool
			analysis.preferredColors = []string{"zwart", "wit", "grijs", "navy"}
		}
		analysis.isNeutral = analysis.temperature == domain.TemperatureCool
		return analysis
	}

	analysis := &quizColorAnalysis{temperature: domain.TemperatureNeutral}
	switch {
	case pref == "warm" || containsAny(pref, "aardse", "earth", "beige", "camel", "bruin"):
		analysis.temperature = domain.TemperatureWarm
		analysis.preferredColors = []string{"bruin", "camel", "khaki", "olijfgroen", "beige"}
	case pref == "koel" || containsAny(pref, "blauw", "navy", "saffierblauw", "smaragdgroen", "juweel", "jewel"):
		analysis.temperature = domain.TemperatureCool
		analysis.preferredColors = []string{"smaragdgroen", "saffierblauw", "navy", "robijnrood"}
	case pref == "neutraal" || pref == "neutral" || containsAny(pref, "zwart", "wit", "grijs", "neutrale"):
		analysis.temperature = domain.TemperatureCool
		analysis.isNeutral = true
		analysis.preferredColors = []string{"zwart", "wit", "grijs", "beige", "navy"}
	case pref == "pastel" || containsAny(pref, "pastel", "roze", "lavendel", "lichtblauw"):
		analysis.temperature = domain.TemperatureCool
		analysis.preferredColors = []string{"roze", "lichtblauw", "lavendel"}
	case pref == "bold" || containsAny(pref, "fel", "elektrisch", "neon"):
		analysis.temperature = domain.TemperatureWarm
		analysis.preferredColors = []string{"rood", "elektrischblauw", "neongeel", "oranje"}
	}

	if len(analysis.preferredColors) > 0 && !analysis.isNeutral {
		analysis.isNeutral = true
	}
	return analysis
}

// analyzeSwipeColors frequency-ranks dominant colors from liked photos
// and derives temperature, chroma, and contrast from the top three.
func analyzeSwipeColors(photos []*domain.MoodPhoto) *swipeColorAnalysis {
	if len(photos) == 0 {
		return nil
	}

	counts := newCounter()
	for _, photo := range photos {
		for _, c := range photo.DominantColors {
			counts.add(color.Normalize(c))
		}
	}

	dominant := counts.top(3)
	return &swipeColorAnalysis{
		dominantColors: dominant,
		temperature:    color.Temperature(dominant),
		chroma:         determineChroma(dominant),
		contrast:       determineContrast(dominant),
	}
}

// determineChroma classifies saturation from the dominant colors.
// Black and white together read as a bold statement even though both
// are achromatic.
func determineChroma(colors []string) string {
	hasBlack := anyContains(colors, "zwart")
	hasWhite := anyContains(colors, "wit")

	allNeutral := len(colors) > 0
	for _, c := range colors {
		if !containsAny(c, "zwart", "wit", "grijs") {
			allNeutral = false
			break
		}
	}

	switch {
	case hasBlack && hasWhite:
		return domain.ChromaBold
	case hasBlack && allNeutral:
		return domain.ChromaBold
	case allNeutral:
		return domain.ChromaSoft
	default:
		return domain.ChromaMedium
	}
}

// determineContrast classifies contrast from the dominant colors.
func determineContrast(colors []string) string {
	hasBlack := anyContains(colors, "zwart")
	hasWhite := anyContains(colors, "wit")
	hasGray := anyContains(colors, "grijs")

	switch {
	case hasBlack && hasWhite:
		return domain.LevelHigh
	case (hasBlack || hasWhite) && hasGray:
		return domain.LevelMedium
	case hasGray && !hasBlack && !hasWhite:
		return domain.LevelLow
	case hasBlack || hasWhite:
		return domain.LevelMedium
	default:
		return domain.LevelLow
	}
}

// combineColorData merges the two partial analyses. Swipe-derived
// temperature, chroma, and contrast win when both exist; the quiz
// contributes the isNeutral flag to palette naming.
func combineColorData(quizColors *quizColorAnalysis, swipeColors *swipeColorAnalysis) domain.ColorProfile {
	switch {
	case quizColors != nil && swipeColors != nil:
		return domain.ColorProfile{
			Temperature: swipeColors.temperature,
			Value:       valueFromContrast(swipeColors.contrast),
			Contrast:    swipeColors.contrast,
			Chroma:      swipeColors.chroma,
			Season:      determineSeason(swipeColors.temperature),
			PaletteName: buildPaletteName(swipeColors.dominantColors, swipeColors.temperature, quizColors.isNeutral),
			Notes:       buildNotes(swipeColors.dominantColors, swipeColors.chroma, swipeColors.contrast),
		}

	case swipeColors != nil:
		return domain.ColorProfile{
			Temperature: swipeColors.temperature,
			Value:       valueFromContrast(swipeColors.contrast),
			Contrast:    swipeColors.contrast,
			Chroma:      swipeColors.chroma,
			Season:      determineSeason(swipeColors.temperature),
			PaletteName: buildPaletteName(swipeColors.dominantColors, swipeColors.temperature, false),
			Notes:       buildNotes(swipeColors.dominantColors, swipeColors.chroma, swipeColors.contrast),
		}

	case quizColors != nil:
		hasBoldColors := false
		for _, c := range quizColors.preferredColors {
			if containsAny(c, "rood", "blauw", "geel", "elektrisch", "neon", "oranje") {
				hasBoldColors = true
				break
			}
		}
		hasBlackWhite := containsString(quizColors.preferredColors, "zwart") &&
			containsString(quizColors.preferredColors, "wit")

		var chroma, contrast string
		switch {
		case hasBoldColors:
			chroma, contrast = domain.ChromaBold, domain.LevelHigh
		case hasBlackWhite:
			chroma, contrast = domain.ChromaBold, domain.LevelHigh
		case quizColors.isNeutral:
			chroma, contrast = domain.ChromaSoft, domain.LevelLow
		default:
			chroma, contrast = domain.ChromaMedium, domain.LevelMedium
		}

		return domain.ColorProfile{
			Temperature: quizColors.temperature,
			Value:       valueFromContrast(contrast),
			Contrast:    contrast,
			Chroma:      chroma,
			Season:      determineSeason(quizColors.temperature),
			PaletteName: buildPaletteName(quizColors.preferredColors, quizColors.temperature, quizColors.isNeutral),
			Notes:       buildNotes(quizColors.preferredColors, chroma, contrast),
		}

	default:
		return domain.ColorProfile{
			Temperature: domain.TemperatureNeutral,
			Value:       domain.LevelMedium,
			Contrast:    domain.LevelLow,
			Chroma:      domain.ChromaSoft,
			Season:      "zomer",
			PaletteName: "Soft Cool Tonals (neutraal)",
			Notes:       []string{"Tonal outfits met zachte texturen.", "Vermijd harde contrasten."},
		}
	}
}

func valueFromContrast(contrast string) string {
	switch contrast {
	case domain.LevelHigh:
		return domain.LevelHigh
	case domain.LevelLow:
		return domain.LevelLow
	default:
		return domain.LevelMedium
	}
}

// buildPaletteName derives a display name from the palette contents.
func buildPaletteName(colors []string, temperature string, isNeutral bool) string {
	if len(colors) == 0 {
		return capitalize(temperature) + " Neutrals"
	}

	if anyContains(colors, "zwart") {
		if anyContains(colors, "wit") {
			return "Monochrome Contrast (koel)"
		}
		return "Dark Sophisticated (koel)"
	}

	allSoftNeutrals := true
	for _, c := range colors {
		if !containsAny(c, "wit", "grijs", "beige", "camel") {
			allSoftNeutrals = false
			break
		}
	}
	if isNeutral || allSoftNeutrals {
		return "Earthy " + capitalize(temperature) + " Neutrals (neutraal)"
	}

	return capitalize(temperature) + " Signature Colors"
}

// determineSeason maps temperature onto a seasonal color type.
func determineSeason(temperature string) string {
	switch temperature {
	case domain.TemperatureWarm:
		return "herfst"
	case domain.TemperatureCool:
		return "winter"
	default:
		return "lente"
	}
}

// buildNotes assembles the styling notes for the profile.
func buildNotes(colors []string, chroma, contrast string) []string {
	var notes []string

	if containsString(colors, "zwart") {
		notes = append(notes, "Zwart als basis kleur voor een sterke statement.")
	}
	if containsString(colors, "wit") {
		notes = append(notes, "Wit voor helderheid en frisse contrasten.")
	}
	if containsString(colors, "grijs") || containsString(colors, "beige") {
		notes = append(notes, "Neutrale tinten als foundation voor layering.")
	}

	switch chroma {
	case domain.ChromaBold:
		notes = append(notes, "Durf kleurcontrasten en statement pieces.")
	case domain.ChromaSoft:
		notes = append(notes, "Houd het subtiel met tonal combinaties.")
	}

	switch contrast {
	case domain.LevelHigh:
		notes = append(notes, "Speel met high-contrast voor impact.")
	case domain.LevelLow:
		notes = append(notes, "Vermijd harde contrasten, kies voor flow.")
	}

	if len(notes) == 0 {
		notes = []string{"Tijdloze stukken die bij je stijl passen."}
	}
	return notes
}

// colorConfidence adds the per-source contributions, capped at 1.0.
func colorConfidence(quizColors *quizColorAnalysis, swipeColors *swipeColorAnalysis) float64 {
	confidence := 0.0
	if quizColors != nil {
		confidence += quizColorConfidence
	}
	if swipeColors != nil {
		confidence += swipeColorConfidence
	}
	return math.Min(confidence, 1.0)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
