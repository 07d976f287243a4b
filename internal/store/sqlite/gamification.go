package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/store"
)

// gamificationColumns is the ordered list of columns selected in
// user_gamification queries. Must match the scan order in
// scanGamification.
const gamificationColumns = `user_id, total_xp, level, level_title, swipe_streak, created_at, updated_at`

// scanGamification scans a sql.Row (or sql.Rows via its Scan method)
// into a domain.UserGamification.
func scanGamification(scanner interface{ Scan(dest ...any) error }) (*domain.UserGamification, error) {
	var g domain.UserGamification

	var (
		createdAt string
		updatedAt string
	)

	err := scanner.Scan(
		&g.UserID,
		&g.TotalXP,
		&g.Level,
		&g.LevelTitle,
		&g.SwipeStreak,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	g.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// InitUserGamification inserts the starting row for a user if none
// exists yet. Idempotent.
func (s *Store) InitUserGamification(ctx context.Context, userID string) (*domain.UserGamification, error) {
	now := formatTime(time.Now())
	start := domain.LevelForXP(0)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_gamification (user_id, total_xp, level, level_title, swipe_streak, created_at, updated_at)
		VALUES (?, 0, ?, ?, 0, ?, ?)
		ON CONFLICT(user_id) DO NOTHING`,
		userID, start.Number, start.Title, now, now,
	)
	if err != nil {
		return nil, err
	}

	return s.GetUserGamification(ctx, userID)
}

// GetUserGamification retrieves a user's gamification state.
// Returns store.ErrProfileNotFound when no row exists.
func (s *Store) GetUserGamification(ctx context.Context, userID string) (*domain.UserGamification, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+gamificationColumns+` FROM user_gamification WHERE user_id = ?`, userID)

	g, err := scanGamification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// AwardXP adds XP to a user, recomputing level and title from the fixed
// ladder. The user's row is created first if missing.
func (s *Store) AwardXP(ctx context.Context, userID string, amount int) (*domain.UserGamification, error) {
	g, err := s.InitUserGamification(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := g.TotalXP + amount
	if total < 0 {
		total = 0
	}
	level := domain.LevelForXP(total)

	_, err = s.db.ExecContext(ctx, `
		UPDATE user_gamification
		SET total_xp = ?, level = ?, level_title = ?, updated_at = ?
		WHERE user_id = ?`,
		total, level.Number, level.Title, formatTime(time.Now()), userID,
	)
	if err != nil {
		return nil, err
	}

	return s.GetUserGamification(ctx, userID)
}

// SetSwipeStreak updates a user's swipe streak counter.
func (s *Store) SetSwipeStreak(ctx context.Context, userID string, streak int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE user_gamification
		SET swipe_streak = ?, updated_at = ?
		WHERE user_id = ?`,
		streak, formatTime(time.Now()), userID,
	)
	return err
}

// UnlockAchievement records an achievement for a user. Re-unlocking the
// same key is a no-op.
func (s *Store) UnlockAchievement(ctx context.Context, a *domain.Achievement) error {
	if a.UnlockedAt.IsZero() {
		a.UnlockedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO achievements (user_id, key, title, unlocked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, key) DO NOTHING`,
		a.UserID, a.Key, a.Title, formatTime(a.UnlockedAt),
	)
	return err
}

// GetAchievements lists a user's achievements, oldest first.
func (s *Store) GetAchievements(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, key, title, unlocked_at
		FROM achievements
		WHERE user_id = ?
		ORDER BY unlocked_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		var unlockedAt string
		if err := rows.Scan(&a.UserID, &a.Key, &a.Title, &unlockedAt); err != nil {
			return nil, err
		}
		a.UnlockedAt, err = parseTime(unlockedAt)
		if err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	if out == nil {
		out = []*domain.Achievement{}
	}
	return out, rows.Err()
}

// GetLeaderboard returns the top users ordered by total XP descending.
// Ranks start at 1.
func (s *Store) GetLeaderboard(ctx context.Context, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, total_xp, level, level_title
		FROM user_gamification
		ORDER BY total_xp DESC, user_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.LeaderboardEntry
	rank := 0
	for rows.Next() {
		rank++
		e := &domain.LeaderboardEntry{Rank: rank}
		if err := rows.Scan(&e.UserID, &e.TotalXP, &e.Level, &e.LevelTitle); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if out == nil {
		out = []*domain.LeaderboardEntry{}
	}
	return out, rows.Err()
}
