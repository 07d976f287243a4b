package domain

import "time"

// MoodPhoto is a style-probe image shown during the swipe flow.
// Photos are curated reference data: the pipeline reads them but never
// mutates them.
type MoodPhoto struct {
	ID        string   `json:"id"`
	ImageURL  string   `json:"image_url"`
	StyleTags []string `json:"style_tags"`
	MoodTags  []string `json:"mood_tags,omitempty"`
	// ArchetypeWeights maps archetype weight keys to non-negative
	// weights. Weights need not sum to 1.
	ArchetypeWeights map[string]float64 `json:"archetype_weights"`
	DominantColors   []string           `json:"dominant_colors"`
	Occasion         string             `json:"occasion,omitempty"`
	Season           string             `json:"season,omitempty"`
	Active           bool               `json:"active"`
	DisplayOrder     int                `json:"display_order"`
	CreatedAt        time.Time          `json:"created_at"`
}

// WeightFor returns the photo's weight for the given archetype key,
// or 0 when absent.
func (p *MoodPhoto) WeightFor(weightKey string) float64 {
	if p.ArchetypeWeights == nil {
		return 0
	}
	return p.ArchetypeWeights[weightKey]
}

// HasArchetype reports whether the photo carries a positive weight for
// the given archetype key.
func (p *MoodPhoto) HasArchetype(weightKey string) bool {
	return p.WeightFor(weightKey) > 0
}
