package domain

import "time"

// SwipeDirection is the user's decision on a mood photo.
type SwipeDirection string

const (
	// SwipeLeft rejects a photo.
	SwipeLeft SwipeDirection = "left"
	// SwipeRight likes a photo.
	SwipeRight SwipeDirection = "right"
)

// Valid reports whether the direction is one of the two known values.
func (d SwipeDirection) Valid() bool {
	return d == SwipeLeft || d == SwipeRight
}

// StyleSwipe is one user decision on a MoodPhoto. Swipes are insert-only:
// created once per event, never mutated.
// Exactly one of UserID or SessionID is set.
type StyleSwipe struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id,omitempty"`
	SessionID      string         `json:"session_id,omitempty"`
	PhotoID        string         `json:"photo_id"`
	Direction      SwipeDirection `json:"direction"`
	ResponseTimeMs int            `json:"response_time_ms"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Liked reports whether this swipe was a like.
func (s *StyleSwipe) Liked() bool {
	return s.Direction == SwipeRight
}

// Identity returns the owning identifier, preferring the user ID.
func (s *StyleSwipe) Identity() string {
	if s.UserID != "" {
		return s.UserID
	}
	return s.SessionID
}

// SwipeStats summarizes a user's swipe activity.
type SwipeStats struct {
	Total             int     `json:"total"`
	Likes             int     `json:"likes"`
	Rejects           int     `json:"rejects"`
	AvgResponseTimeMs float64 `json:"avg_response_time_ms"`
}

// SwipeInsight is a short observation surfaced to the user mid-session.
type SwipeInsight struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	SessionID  string    `json:"session_id,omitempty"`
	Message    string    `json:"message"`
	Confidence float64   `json:"confidence"`
	Dismissed  bool      `json:"dismissed"`
	CreatedAt  time.Time `json:"created_at"`
}
