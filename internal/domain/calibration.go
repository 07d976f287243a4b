package domain

import "time"

// CalibrationReaction is the user's judgment on a calibration outfit.
type CalibrationReaction string

const (
	ReactionSpotOn   CalibrationReaction = "spot_on"
	ReactionNotForMe CalibrationReaction = "not_for_me"
	ReactionMaybe    CalibrationReaction = "maybe"
)

// Valid reports whether the reaction is one of the known values.
func (r CalibrationReaction) Valid() bool {
	switch r {
	case ReactionSpotOn, ReactionNotForMe, ReactionMaybe:
		return true
	}
	return false
}

// OutfitItems are the garment names of a calibration outfit.
type OutfitItems struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Shoes  string `json:"shoes"`
}

// CalibrationOutfit is one representative outfit synthesized from an
// embedding, shown to the user for feedback.
type CalibrationOutfit struct {
	ID          string      `json:"id"`
	Archetype   string      `json:"archetype"`
	Items       OutfitItems `json:"items"`
	Colors      []string    `json:"colors"`
	Occasion    string      `json:"occasion"`
	Description string      `json:"description"`
	// ArchetypeWeights records the outfit's primary weight plus the
	// discounted secondary influence.
	ArchetypeWeights map[string]float64 `json:"archetype_weights"`
}

// CalibrationFeedback is one user reaction to one calibration outfit.
// The outfit's characteristics are denormalized at judgment time so
// historical feedback stays interpretable if generation logic changes.
type CalibrationFeedback struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id,omitempty" validate:"required_without=SessionID"`
	SessionID      string              `json:"session_id,omitempty" validate:"required_without=UserID"`
	OutfitID       string              `json:"outfit_id" validate:"required"`
	Reaction       CalibrationReaction `json:"reaction" validate:"required,oneof=spot_on not_for_me maybe"`
	ResponseTimeMs int                 `json:"response_time_ms" validate:"gte=0"`

	// Snapshot of the outfit at time of judgment.
	ArchetypeWeights map[string]float64 `json:"archetype_weights"`
	DominantColors   []string           `json:"dominant_colors"`
	Occasion         string             `json:"occasion"`

	CreatedAt time.Time `json:"created_at"`
}
