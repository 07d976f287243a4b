package store

import (
	"context"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/id"
)

// Fixed blend weights for the final embedding computation.
const (
	QuizBlendWeight        = 0.40
	SwipeBlendWeight       = 0.35
	CalibrationBlendWeight = 0.25
)

// BlendEmbedding combines the per-source components by the fixed
// weights. Absent sources contribute zero; all sources absent yields an
// empty, non-nil embedding.
func BlendEmbedding(quiz, swipes, calibration domain.StyleEmbedding) domain.StyleEmbedding {
	out := domain.StyleEmbedding{}

	keys := map[string]struct{}{}
	for k := range quiz {
		keys[k] = struct{}{}
	}
	for k := range swipes {
		keys[k] = struct{}{}
	}
	for k := range calibration {
		keys[k] = struct{}{}
	}

	for k := range keys {
		v := quiz[k]*QuizBlendWeight + swipes[k]*SwipeBlendWeight + calibration[k]*CalibrationBlendWeight
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

// ComputeFinalEmbedding blends the latest profile's quiz, swipe, and
// calibration components into a draft embedding without persisting
// anything. Returns ErrProfileNotFound when the identity has no profile.
func (s *Store) ComputeFinalEmbedding(ctx context.Context, identity string) (domain.StyleEmbedding, error) {
	profile, err := s.GetLatestProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	return BlendEmbedding(profile.QuizEmbedding, profile.SwipeEmbedding, profile.CalibrationEmbedding), nil
}

// LockEmbedding computes the final embedding for the identity's latest
// profile and persists it as the immutable locked state: lock timestamp
// set, version bumped, snapshot appended.
//
// Fails with ErrProfileLocked if the profile is already locked (state
// untouched) and ErrNoSignals if no source carries any signal.
func (s *Store) LockEmbedding(ctx context.Context, identity, trigger string) (*domain.StyleProfile, error) {
	profile, err := s.GetLatestProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	if profile.IsLocked() {
		return nil, ErrProfileLocked
	}

	final := BlendEmbedding(profile.QuizEmbedding, profile.SwipeEmbedding, profile.CalibrationEmbedding)
	if final.IsEmpty() {
		return nil, ErrNoSignals
	}

	now := time.Now()
	profile.LockedEmbedding = final
	profile.EmbeddingLockedAt = &now
	profile.Version++

	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	snap := &domain.EmbeddingSnapshot{
		ID:        id.MustGenerate("snap"),
		ProfileID: profile.ID,
		Version:   profile.Version,
		Embedding: final.Clone(),
		Sources: domain.SourceWeights{
			Quiz:        QuizBlendWeight,
			Swipes:      SwipeBlendWeight,
			Calibration: CalibrationBlendWeight,
		},
		Trigger:   trigger,
		CreatedAt: now,
	}
	if err := s.AppendSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("embedding locked",
			"profile_id", profile.ID,
			"version", profile.Version,
			"archetypes", len(final))
	}

	return profile, nil
}

// ApplyCalibration folds calibration adjustments into the latest
// profile's calibration component (clamped at zero), bumps the version,
// and appends a snapshot of the resulting blend.
//
// Fails with ErrProfileLocked when the profile is already locked: a
// locked embedding must not drift.
func (s *Store) ApplyCalibration(ctx context.Context, identity string, adjustments domain.StyleEmbedding) (*domain.StyleProfile, error) {
	profile, err := s.GetLatestProfile(ctx, identity)
	if err != nil {
		return nil, err
	}

	if profile.IsLocked() {
		return nil, ErrProfileLocked
	}

	calibration := profile.CalibrationEmbedding.Clone()
	for k, adj := range adjustments {
		v := calibration[k] + adj
		if v < 0 {
			v = 0
		}
		calibration[k] = v
	}
	profile.CalibrationEmbedding = calibration
	profile.Version++

	if err := s.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	snap := &domain.EmbeddingSnapshot{
		ID:        id.MustGenerate("snap"),
		ProfileID: profile.ID,
		Version:   profile.Version,
		Embedding: BlendEmbedding(profile.QuizEmbedding, profile.SwipeEmbedding, profile.CalibrationEmbedding),
		Sources: domain.SourceWeights{
			Quiz:        QuizBlendWeight,
			Swipes:      SwipeBlendWeight,
			Calibration: CalibrationBlendWeight,
		},
		Trigger:   domain.TriggerCalibrationComplete,
		CreatedAt: time.Now(),
	}
	if err := s.AppendSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	return profile, nil
}
