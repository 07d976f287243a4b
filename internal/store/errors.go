package store

import "github.com/fitfi/fitfi-server/internal/errors"

// Sentinel errors for store lookups and state violations.
var (
	// ErrPhotoNotFound is returned when a mood photo does not exist.
	ErrPhotoNotFound = errors.NotFound("mood photo not found")

	// ErrProfileNotFound is returned when no style profile exists for
	// the identity.
	ErrProfileNotFound = errors.NotFound("style profile not found")

	// ErrInsightNotFound is returned when a swipe insight does not exist.
	ErrInsightNotFound = errors.NotFound("swipe insight not found")

	// ErrProfileLocked is returned when locking an already-locked
	// profile. The stored state is left untouched.
	ErrProfileLocked = errors.Locked("embedding already locked")

	// ErrNoSignals is returned when locking is attempted with no quiz,
	// swipe, or calibration signal present.
	ErrNoSignals = errors.Validation("no preference signals to lock")
)
