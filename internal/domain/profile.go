package domain

import "time"

// LockState is the embedding lock state of a style profile.
// The only allowed transition is Unlocked -> Locked, exactly once.
type LockState string

const (
	// LockStateUnlocked means the embedding may be recomputed freely.
	LockStateUnlocked LockState = "unlocked"
	// LockStateLocked is terminal: embedding and lock timestamp are fixed.
	LockStateLocked LockState = "locked"
)

// StyleProfile is the persisted per-identity profile: the detected
// archetypes, color profile, and the per-source embedding components the
// aggregation blends.
// Exactly one of UserID or SessionID is set.
type StyleProfile struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`

	Archetype          string        `json:"archetype,omitempty"`
	SecondaryArchetype string        `json:"secondary_archetype,omitempty"`
	ColorProfile       *ColorProfile `json:"color_profile,omitempty"`
	Confidence         float64       `json:"confidence"`
	DataSource         DataSource    `json:"data_source,omitempty"`

	// Per-source embedding components blended by the aggregation.
	QuizEmbedding        StyleEmbedding `json:"quiz_embedding,omitempty"`
	SwipeEmbedding       StyleEmbedding `json:"swipe_embedding,omitempty"`
	CalibrationEmbedding StyleEmbedding `json:"calibration_embedding,omitempty"`

	// Lock state. LockedEmbedding and EmbeddingLockedAt are immutable
	// once set.
	LockedEmbedding   StyleEmbedding `json:"locked_embedding,omitempty"`
	EmbeddingLockedAt *time.Time     `json:"embedding_locked_at,omitempty"`
	Version           int            `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStyleProfile creates an unlocked profile for the given identity.
func NewStyleProfile(id, userID, sessionID string) *StyleProfile {
	now := time.Now()
	return &StyleProfile{
		ID:        id,
		UserID:    userID,
		SessionID: sessionID,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// LockState returns the profile's current lock state.
func (p *StyleProfile) LockState() LockState {
	if p.EmbeddingLockedAt != nil {
		return LockStateLocked
	}
	return LockStateUnlocked
}

// IsLocked reports whether the embedding has been locked.
func (p *StyleProfile) IsLocked() bool {
	return p.LockState() == LockStateLocked
}

// Identity returns the owning identifier, preferring the user ID.
func (p *StyleProfile) Identity() string {
	if p.UserID != "" {
		return p.UserID
	}
	return p.SessionID
}
