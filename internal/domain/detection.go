package domain

import "github.com/fitfi/fitfi-server/internal/archetype"

// ArchetypeScore is one archetype's score from a detection run, with
// human-readable reasons for each contributing signal.
type ArchetypeScore struct {
	Archetype archetype.Key `json:"archetype"`
	Score     float64       `json:"score"`
	Reasons   []string      `json:"reasons"`
}

// ArchetypeDetectionResult ranks the full taxonomy for one user.
type ArchetypeDetectionResult struct {
	Primary archetype.Key `json:"primary"`
	// Secondary is empty unless the runner-up scored above the fixed
	// significance threshold.
	Secondary archetype.Key    `json:"secondary,omitempty"`
	Scores    []ArchetypeScore `json:"scores"`
	// Confidence is a stepwise bucket derived from the primary score,
	// one of 0.3, 0.5, 0.7, 0.9.
	Confidence float64 `json:"confidence"`
}

// HasSecondary reports whether a significant secondary archetype exists.
func (r *ArchetypeDetectionResult) HasSecondary() bool {
	return r.Secondary != ""
}
