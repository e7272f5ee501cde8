// Package stats maintains the lifetime scoreboard shown on player
// profiles.
package stats

import (
	"context"
	"fmt"

	"pisti/internal/ports"
)

// MaxLastScores is how many recent game scores a record keeps.
const MaxLastScores = 5

// Service folds game results into persisted player stats.
type Service struct {
	store ports.StatsPort
}

// NewService constructs a stats service over the given store.
func NewService(store ports.StatsPort) *Service {
	return &Service{store: store}
}

// GameResult is one finished game from a single player's perspective.
type GameResult struct {
	Won        bool
	Score      int
	PistiCount int
}

// RecordResult loads the user's stats, applies the result and saves the
// record back. A missing record starts from zero with the given name.
func (s *Service) RecordResult(ctx context.Context, userID, playerName string, result GameResult) (ports.PlayerStats, error) {
	if s.store == nil {
		return ports.PlayerStats{}, fmt.Errorf("stats service not configured")
	}

	record, found, err := s.store.LoadStats(ctx, userID)
	if err != nil {
		return ports.PlayerStats{}, fmt.Errorf("failed to load stats for %s: %w", userID, err)
	}
	if !found {
		record = ports.PlayerStats{PlayerName: playerName}
	}
	if playerName != "" {
		record.PlayerName = playerName
	}

	record = Apply(record, result)

	if err := s.store.SaveStats(ctx, userID, record); err != nil {
		return ports.PlayerStats{}, fmt.Errorf("failed to save stats for %s: %w", userID, err)
	}
	return record, nil
}

// Apply folds one game result into a stats record.
func Apply(record ports.PlayerStats, result GameResult) ports.PlayerStats {
	record.GamesPlayed++
	if result.Won {
		record.GamesWon++
	}
	record.TotalScore += int64(result.Score)
	record.PistiCount += result.PistiCount
	record.WinRate = float64(record.GamesWon) / float64(record.GamesPlayed)

	record.LastScores = append([]int{result.Score}, record.LastScores...)
	if len(record.LastScores) > MaxLastScores {
		record.LastScores = record.LastScores[:MaxLastScores]
	}
	return record
}
