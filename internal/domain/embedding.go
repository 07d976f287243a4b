package domain

import "time"

// StyleEmbedding maps archetype weight keys to non-negative preference
// strengths. Draft embeddings are not normalized.
type StyleEmbedding map[string]float64

// Clone returns a copy of the embedding. A nil embedding clones to an
// empty, non-nil one.
func (e StyleEmbedding) Clone() StyleEmbedding {
	out := make(StyleEmbedding, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the embedding carries no positive signal.
func (e StyleEmbedding) IsEmpty() bool {
	for _, v := range e {
		if v > 0 {
			return false
		}
	}
	return true
}

// SourceWeights is the contribution breakdown of an embedding
// computation. The nominal blend is quiz 0.40, swipes 0.35,
// calibration 0.25.
type SourceWeights struct {
	Quiz        float64 `json:"quiz"`
	Swipes      float64 `json:"swipes"`
	Calibration float64 `json:"calibration"`
}

// EmbeddingSnapshot is an immutable historical record of an embedding at
// a version. Snapshots are append-only.
type EmbeddingSnapshot struct {
	ID        string         `json:"id"`
	ProfileID string         `json:"profile_id"`
	Version   int            `json:"version"`
	Embedding StyleEmbedding `json:"embedding"`
	Sources   SourceWeights  `json:"sources"`
	Trigger   string         `json:"trigger"`
	CreatedAt time.Time      `json:"created_at"`
}

// Snapshot trigger events.
const (
	TriggerProfileGenerated    = "profile_generated"
	TriggerCalibrationComplete = "calibration_complete"
)

// ArchetypeRank is one entry of a top-archetypes ranking, with its share
// of the embedding total.
type ArchetypeRank struct {
	Archetype  string  `json:"archetype"`
	Score      float64 `json:"score"`
	Percentage int     `json:"percentage"`
}

// EmbeddingComparison describes how two embeddings differ.
type EmbeddingComparison struct {
	// Similarity is in [0,100]; identical embeddings score 100.
	Similarity int `json:"similarity"`
	// Changed lists archetypes whose absolute difference exceeds the
	// fixed noise threshold.
	Changed []string `json:"changed"`
	// New lists archetypes present only in the second embedding.
	New []string `json:"new"`
	// Removed lists archetypes present only in the first embedding.
	Removed []string `json:"removed"`
}
