package domain

import "time"

// Level is one rung of the gamification ladder.
type Level struct {
	Number int
	Title  string
	// MinXP is the total XP required to reach this level.
	MinXP int
}

// levels is the fixed ladder, ordered ascending by MinXP.
//
//nolint:gochecknoglobals // Static ladder definition
var levels = []Level{
	{Number: 1, Title: "Style Starter", MinXP: 0},
	{Number: 2, Title: "Trend Spotter", MinXP: 100},
	{Number: 3, Title: "Outfit Explorer", MinXP: 250},
	{Number: 4, Title: "Style Curator", MinXP: 500},
	{Number: 5, Title: "Fashion Icon", MinXP: 1000},
}

// Levels returns the full ladder.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// LevelForXP returns the highest level whose threshold the XP total meets.
func LevelForXP(totalXP int) Level {
	current := levels[0]
	for _, l := range levels {
		if totalXP >= l.MinXP {
			current = l
		}
	}
	return current
}

// UserGamification is a user's gamification state.
type UserGamification struct {
	UserID      string    `json:"user_id"`
	TotalXP     int       `json:"total_xp"`
	Level       int       `json:"level"`
	LevelTitle  string    `json:"level_title"`
	SwipeStreak int       `json:"swipe_streak"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Achievement is an unlocked badge.
type Achievement struct {
	UserID     string    `json:"user_id"`
	Key        string    `json:"key"`
	Title      string    `json:"title"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"user_id"`
	TotalXP    int    `json:"total_xp"`
	Level      int    `json:"level"`
	LevelTitle string `json:"level_title"`
}
