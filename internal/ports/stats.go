package ports

import "context"

// PlayerStats is the lifetime scoreboard kept per user.
type PlayerStats struct {
	PlayerName  string  `json:"player_name"`
	TotalScore  int64   `json:"total_score"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	WinRate     float64 `json:"win_rate"`
	PistiCount  int     `json:"pisti_count"`
	LastScores  []int   `json:"last_scores"` // most recent first, capped
}

// StatsPort persists player statistics.
type StatsPort interface {
	// LoadStats returns the stored stats for a user. found is false for a
	// user with no record yet.
	LoadStats(ctx context.Context, userID string) (PlayerStats, bool, error)

	// SaveStats writes the stats record for a user.
	SaveStats(ctx context.Context, userID string, stats PlayerStats) error
}
