package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/normalize"
	"github.com/fitfi/fitfi-server/internal/store"
)

// changedThreshold is the absolute per-archetype difference above which
// a comparison reports an archetype as changed. Smaller moves are noise.
const changedThreshold = 10.0

// InfluenceBreakdown summarizes what produced a locked embedding.
type InfluenceBreakdown struct {
	QuizInfluence        float64 `json:"quiz_influence"`
	SwipesInfluence      float64 `json:"swipes_influence"`
	CalibrationInfluence float64 `json:"calibration_influence"`
	TotalArchetypes      int     `json:"total_archetypes"`
}

// StabilityPoint is one snapshot's similarity to its predecessor.
type StabilityPoint struct {
	Version        int                   `json:"version"`
	Embedding      domain.StyleEmbedding `json:"embedding"`
	StabilityScore int                   `json:"stability_score"`
}

// EmbeddingService maintains the versioned preference vector per
// identity: draft computation, the one-way lock, snapshots, and the
// pure comparison utilities.
//
// Store reads degrade to empty results when the store is unavailable;
// only the lock operation surfaces errors, because a wrong lock is
// worse than a missing one.
type EmbeddingService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewEmbeddingService creates an embedding service.
func NewEmbeddingService(store *store.Store, logger *slog.Logger) *EmbeddingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmbeddingService{store: store, logger: logger}
}

// ComputeFinalEmbedding blends the identity's quiz, swipe, and
// calibration components into a draft embedding without locking.
func (s *EmbeddingService) ComputeFinalEmbedding(ctx context.Context, userID, sessionID string) domain.StyleEmbedding {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		s.logger.Warn("cannot compute embedding, store unavailable or no identity")
		return domain.StyleEmbedding{}
	}

	embedding, err := s.store.ComputeFinalEmbedding(ctx, identity)
	if err != nil {
		s.logger.Warn("computing final embedding failed", "identity", identity, "error", err)
		return domain.StyleEmbedding{}
	}
	return embedding
}

// LockEmbedding performs the final computation and persists it as the
// immutable locked state. Callers should check IsEmbeddingLocked first;
// locking an already-locked profile returns a conflict error.
func (s *EmbeddingService) LockEmbedding(ctx context.Context, userID, sessionID string) (domain.StyleEmbedding, error) {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		s.logger.Warn("cannot lock embedding, store unavailable or no identity")
		return domain.StyleEmbedding{}, nil
	}

	profile, err := s.store.LockEmbedding(ctx, identity, domain.TriggerCalibrationComplete)
	if err != nil {
		s.logger.Error("locking embedding failed", "identity", identity, "error", err)
		return nil, err
	}
	return profile.LockedEmbedding.Clone(), nil
}

// GetLockedEmbedding returns the most recently locked embedding, or nil
// when none exists.
func (s *EmbeddingService) GetLockedEmbedding(ctx context.Context, userID, sessionID string) domain.StyleEmbedding {
	profile := s.GetLockedProfile(ctx, userID, sessionID)
	if profile == nil {
		return nil
	}
	return profile.LockedEmbedding.Clone()
}

// GetLockedProfile returns the most recently locked profile, or nil.
// Multiple lock attempts resolve to last-created wins.
func (s *EmbeddingService) GetLockedProfile(ctx context.Context, userID, sessionID string) *domain.StyleProfile {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		return nil
	}

	profile, err := s.store.GetLockedProfile(ctx, identity)
	if err != nil {
		s.logger.Warn("fetching locked profile failed", "identity", identity, "error", err)
		return nil
	}
	return profile
}

// IsEmbeddingLocked reports whether the identity has a locked profile.
func (s *EmbeddingService) IsEmbeddingLocked(ctx context.Context, userID, sessionID string) bool {
	return s.GetLockedProfile(ctx, userID, sessionID) != nil
}

// GetEmbeddingHistory returns the identity's snapshots in version order.
func (s *EmbeddingService) GetEmbeddingHistory(ctx context.Context, userID, sessionID string) []*domain.EmbeddingSnapshot {
	identity := pickIdentity(userID, sessionID)
	if identity == "" || s.store == nil {
		return []*domain.EmbeddingSnapshot{}
	}

	profile, err := s.store.GetLatestProfile(ctx, identity)
	if err != nil {
		s.logger.Warn("fetching profile for history failed", "identity", identity, "error", err)
		return []*domain.EmbeddingSnapshot{}
	}

	snapshots, err := s.store.GetSnapshots(ctx, profile.ID)
	if err != nil {
		s.logger.Warn("fetching snapshots failed", "profile_id", profile.ID, "error", err)
		return []*domain.EmbeddingSnapshot{}
	}
	return snapshots
}

// GetStabilityMetrics scores each snapshot's similarity against its
// predecessor. The first snapshot scores 100 by definition.
func (s *EmbeddingService) GetStabilityMetrics(ctx context.Context, userID, sessionID string) []StabilityPoint {
	snapshots := s.GetEmbeddingHistory(ctx, userID, sessionID)

	points := make([]StabilityPoint, 0, len(snapshots))
	for i, snap := range snapshots {
		score := 100
		if i > 0 {
			score = CompareEmbeddings(snapshots[i-1].Embedding, snap.Embedding).Similarity
		}
		points = append(points, StabilityPoint{
			Version:        snap.Version,
			Embedding:      snap.Embedding.Clone(),
			StabilityScore: score,
		})
	}
	return points
}

// GetInfluenceBreakdown summarizes the source weights behind the locked
// embedding, or nil when nothing is locked.
func (s *EmbeddingService) GetInfluenceBreakdown(ctx context.Context, userID, sessionID string) *InfluenceBreakdown {
	profile := s.GetLockedProfile(ctx, userID, sessionID)
	if profile == nil {
		return nil
	}

	return &InfluenceBreakdown{
		QuizInfluence:        store.QuizBlendWeight,
		SwipesInfluence:      store.SwipeBlendWeight,
		CalibrationInfluence: store.CalibrationBlendWeight,
		TotalArchetypes:      len(profile.LockedEmbedding),
	}
}

// GetTopArchetypes ranks embedding entries by raw score and reports each
// entry's percentage share of the total. A zero total yields zero
// percentages, never a division by zero.
func GetTopArchetypes(embedding domain.StyleEmbedding, limit int) []domain.ArchetypeRank {
	total := 0.0
	for _, score := range embedding {
		total += score
	}

	keys := make([]string, 0, len(embedding))
	for key := range embedding {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if embedding[keys[i]] != embedding[keys[j]] {
			return embedding[keys[i]] > embedding[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if limit >= 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	ranks := make([]domain.ArchetypeRank, 0, len(keys))
	for _, key := range keys {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(embedding[key] / total * 100))
		}
		ranks = append(ranks, domain.ArchetypeRank{
			Archetype:  key,
			Score:      embedding[key],
			Percentage: percentage,
		})
	}
	return ranks
}

// CompareEmbeddings scores how similar two embeddings are (100 is
// identical) and classifies per-archetype movement. Two empty
// embeddings are identical.
func CompareEmbeddings(e1, e2 domain.StyleEmbedding) domain.EmbeddingComparison {
	keys := map[string]struct{}{}
	for k := range e1 {
		keys[k] = struct{}{}
	}
	for k := range e2 {
		keys[k] = struct{}{}
	}

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	comparison := domain.EmbeddingComparison{
		Changed: []string{},
		New:     []string{},
		Removed: []string{},
	}

	totalDiff := 0.0
	for _, k := range ordered {
		score1, score2 := e1[k], e2[k]

		switch {
		case score1 == 0 && score2 > 0:
			comparison.New = append(comparison.New, k)
		case score1 > 0 && score2 == 0:
			comparison.Removed = append(comparison.Removed, k)
		case math.Abs(score1-score2) > changedThreshold:
			comparison.Changed = append(comparison.Changed, k)
		}

		totalDiff += math.Abs(score1 - score2)
	}

	if len(ordered) == 0 {
		comparison.Similarity = 100
		return comparison
	}

	similarity := 100 - math.Min(100, totalDiff/float64(len(ordered)))
	comparison.Similarity = int(math.Round(similarity))
	return comparison
}

// FormatEmbeddingForDisplay renders the top three archetypes with their
// percentage shares.
func FormatEmbeddingForDisplay(embedding domain.StyleEmbedding) string {
	top := GetTopArchetypes(embedding, 3)

	parts := make([]string, 0, len(top))
	for _, rank := range top {
		parts = append(parts, fmt.Sprintf("%s (%d%%)", normalize.Phrase(rank.Archetype), rank.Percentage))
	}
	return strings.Join(parts, " • ")
}

func pickIdentity(userID, sessionID string) string {
	if userID != "" {
		return userID
	}
	return sessionID
}
