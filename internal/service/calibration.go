package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/id"
	"github.com/fitfi/fitfi-server/internal/normalize"
	"github.com/fitfi/fitfi-server/internal/store"
	"github.com/fitfi/fitfi-server/internal/validation"
)

// Feedback adjustment multipliers, applied per archetype weight of the
// judged outfit.
const (
	spotOnMultiplier   = 10.0
	maybeMultiplier    = 3.0
	notForMeMultiplier = -8.0
)

// secondaryOutfitDiscount is the fraction of the next-ranked archetype's
// score carried into an outfit as minority influence.
const secondaryOutfitDiscount = 0.4

// outfitTemplate is the static per-archetype outfit content. Real
// product-backed generation lives in the recommendation engine; these
// placeholders only need to read plausibly during calibration.
type outfitTemplate struct {
	items       domain.OutfitItems
	colors      []string
	occasion    string
	description string
}

//nolint:gochecknoglobals // Static template table
var outfitTemplates = map[string]outfitTemplate{
	"minimal": {
		items: domain.OutfitItems{
			Top:    "Essential Crew Neck Tee",
			Bottom: "Slim Fit Jeans",
			Shoes:  "Low-Top Leather Sneakers",
		},
		colors:      []string{"#000000", "#FFFFFF", "#808080"},
		occasion:    "casual",
		description: "pure minimalistische basics",
	},
	"streetwear": {
		items: domain.OutfitItems{
			Top:    "Oversized Premium Hoodie",
			Bottom: "Tapered Joggers",
			Shoes:  "Premium Hi-Top Sneakers",
		},
		colors:      []string{"#1C1C1C", "#FFFFFF", "#808080"},
		occasion:    "casual",
		description: "urban streetwear met premium touch",
	},
	"athletic": {
		items: domain.OutfitItems{
			Top:    "Performance Training Tee",
			Bottom: "Tech Track Pants",
			Shoes:  "Lightweight Running Sneakers",
		},
		colors:      []string{"#000000", "#34495E", "#ECF0F1"},
		occasion:    "sport",
		description: "sportieve performance looks met technische materialen",
	},
	"classic": {
		items: domain.OutfitItems{
			Top:    "Classic Oxford Shirt",
			Bottom: "Classic Chino Pants",
			Shoes:  "Oxford Dress Shoes",
		},
		colors:      []string{"#000080", "#FFFFFF", "#8B7355"},
		occasion:    "work",
		description: "tijdloze klassiekers die altijd werken",
	},
	"smart_casual": {
		items: domain.OutfitItems{
			Top:    "Structured Oxford Shirt",
			Bottom: "Tailored Dress Pants",
			Shoes:  "Leather Loafers",
		},
		colors:      []string{"#2C3E50", "#ECF0F1", "#8B7355"},
		occasion:    "work",
		description: "gestructureerde smart casual met verfijnde details",
	},
	"avant_garde": {
		items: domain.OutfitItems{
			Top:    "Asymmetric Longline Shirt",
			Bottom: "Draped Wide-Leg Trousers",
			Shoes:  "Chunky Statement Sneakers",
		},
		colors:      []string{"#1C1C1C", "#34495E", "#ECF0F1"},
		occasion:    "casual",
		description: "conceptuele silhouetten met gedurfde proporties",
	},
}

// CalibrationEffectiveness aggregates feedback per reaction type.
type CalibrationEffectiveness struct {
	Reaction            domain.CalibrationReaction `json:"reaction"`
	TotalCount          int                        `json:"total_count"`
	AvgResponseTimeMs   float64                    `json:"avg_response_time_ms"`
	MostCommonArchetype string                     `json:"most_common_archetype"`
}

// CalibrationService synthesizes representative outfits from an
// embedding, collects feedback on them, and folds that feedback back
// into the embedding computation.
type CalibrationService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCalibrationService creates a calibration service.
func NewCalibrationService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *CalibrationService {
	if logger == nil {
		logger = slog.Default()
	}
	if validator == nil {
		validator = validation.New()
	}
	return &CalibrationService{store: store, validator: validator, logger: logger}
}

// GenerateCalibrationOutfits builds one outfit for each of the top
// three archetypes in the embedding. Each outfit leans primarily toward
// its archetype and carries a discounted minority influence from the
// next-ranked one.
func (s *CalibrationService) GenerateCalibrationOutfits(embedding domain.StyleEmbedding) []domain.CalibrationOutfit {
	top := GetTopArchetypes(embedding, 3)

	outfits := make([]domain.CalibrationOutfit, 0, len(top))
	for i, rank := range top {
		weights := map[string]float64{
			rank.Archetype: rank.Score / 100,
		}
		if i+1 < len(top) {
			next := top[i+1]
			weights[next.Archetype] = next.Score / 100 * secondaryOutfitDiscount
		}

		template, ok := outfitTemplates[rank.Archetype]
		if !ok {
			template = outfitTemplates["minimal"]
		}

		outfits = append(outfits, domain.CalibrationOutfit{
			ID:        fmt.Sprintf("calibration-%d", i),
			Archetype: rank.Archetype,
			Items:     template.items,
			Colors:    template.colors,
			Occasion:  template.occasion,
			Description: fmt.Sprintf("Deze look combineert %s. Perfect voor jouw voorkeur voor %s.",
				template.description, normalize.Phrase(rank.Archetype)),
			ArchetypeWeights: weights,
		})
	}
	return outfits
}

// RecordFeedback validates and persists one feedback row verbatim.
// Persistence errors are returned: dropped feedback would silently skew
// the calibration outcome.
func (s *CalibrationService) RecordFeedback(ctx context.Context, feedback *domain.CalibrationFeedback) error {
	if err := s.validator.Validate(feedback); err != nil {
		return err
	}

	if s.store == nil {
		s.logger.Warn("store unavailable, calibration feedback not recorded")
		return nil
	}

	if feedback.ID == "" {
		feedback.ID = id.MustGenerate("fb")
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}

	return s.store.SaveFeedback(ctx, feedback)
}

// GetFeedbackHistory returns the identity's feedback rows, oldest first.
func (s *CalibrationService) GetFeedbackHistory(ctx context.Context, userID, sessionID string) []*domain.CalibrationFeedback {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		return []*domain.CalibrationFeedback{}
	}

	rows, err := s.store.GetFeedback(ctx, identity)
	if err != nil {
		s.logger.Warn("fetching calibration feedback failed", "identity", identity, "error", err)
		return []*domain.CalibrationFeedback{}
	}
	return rows
}

// ComputeAdjustments derives per-archetype embedding adjustments from
// the identity's recorded feedback. Adjustments may be negative here;
// they are clamped when folded into an embedding.
func (s *CalibrationService) ComputeAdjustments(ctx context.Context, userID, sessionID string) domain.StyleEmbedding {
	adjustments := domain.StyleEmbedding{}

	for _, feedback := range s.GetFeedbackHistory(ctx, userID, sessionID) {
		multiplier := 0.0
		switch feedback.Reaction {
		case domain.ReactionSpotOn:
			multiplier = spotOnMultiplier
		case domain.ReactionMaybe:
			multiplier = maybeMultiplier
		case domain.ReactionNotForMe:
			multiplier = notForMeMultiplier
		}

		for key, weight := range feedback.ArchetypeWeights {
			adjustments[key] += multiplier * weight
		}
	}
	return adjustments
}

// ApplyCalibrationToProfile folds the computed adjustments into the
// identity's calibration component and snapshots the result.
func (s *CalibrationService) ApplyCalibrationToProfile(ctx context.Context, userID, sessionID string) error {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		s.logger.Warn("store unavailable, calibration not applied")
		return nil
	}

	adjustments := s.ComputeAdjustments(ctx, userID, sessionID)
	if len(adjustments) == 0 {
		s.logger.Info("no calibration feedback to apply", "identity", identity)
		return nil
	}

	if _, err := s.store.ApplyCalibration(ctx, identity, adjustments); err != nil {
		return err
	}

	s.logger.Info("calibration applied", "identity", identity, "archetypes", len(adjustments))
	return nil
}

// GetEffectiveness aggregates the identity's feedback per reaction type.
func (s *CalibrationService) GetEffectiveness(ctx context.Context, userID, sessionID string) []CalibrationEffectiveness {
	rows := s.GetFeedbackHistory(ctx, userID, sessionID)

	type bucket struct {
		count         int
		responseSum   int
		archetypeHits map[string]int
	}
	buckets := map[domain.CalibrationReaction]*bucket{}

	for _, feedback := range rows {
		b, ok := buckets[feedback.Reaction]
		if !ok {
			b = &bucket{archetypeHits: map[string]int{}}
			buckets[feedback.Reaction] = b
		}
		b.count++
		b.responseSum += feedback.ResponseTimeMs

		best, bestWeight := "", 0.0
		for key, weight := range feedback.ArchetypeWeights {
			if weight > bestWeight || (weight == bestWeight && (best == "" || key < best)) {
				best, bestWeight = key, weight
			}
		}
		if best != "" {
			b.archetypeHits[best]++
		}
	}

	out := make([]CalibrationEffectiveness, 0, len(buckets))
	for _, reaction := range []domain.CalibrationReaction{domain.ReactionSpotOn, domain.ReactionMaybe, domain.ReactionNotForMe} {
		b, ok := buckets[reaction]
		if !ok {
			continue
		}

		most, mostCount := "", 0
		for key, count := range b.archetypeHits {
			if count > mostCount || (count == mostCount && (most == "" || key < most)) {
				most, mostCount = key, count
			}
		}

		out = append(out, CalibrationEffectiveness{
			Reaction:            reaction,
			TotalCount:          b.count,
			AvgResponseTimeMs:   float64(b.responseSum) / float64(b.count),
			MostCommonArchetype: most,
		})
	}
	return out
}
