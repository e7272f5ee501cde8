package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// TableTier describes one lobby table: its stake, seat count and the
// difficulty of the bots that fill empty seats.
type TableTier struct {
	ID            string `json:"id"`
	BaseBet       int64  `json:"base_bet"`
	SeatCount     int    `json:"seat_count"`
	BotDifficulty string `json:"bot_difficulty"` // "easy", "medium", "hard"
}

// DifficultyProfile tunes one bot tier. MemoryCapability is the percent
// chance a played rank is remembered.
type DifficultyProfile struct {
	ID               string `json:"id"`
	MemoryCapability int    `json:"memory_capability"`
	PlayDelayTicks   int64  `json:"play_delay_ticks"`
}

type GameConfig struct {
	DefaultTier  string              `json:"default_tier"`
	Tiers        []TableTier         `json:"tiers"`
	Difficulties []DifficultyProfile `json:"difficulties"`
	// BotAutoFillDelaySeconds is how long a solo human lobby waits before
	// bots take the remaining seats.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	TurnDurationSeconds     int `json:"turn_duration_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Baked-in fallbacks used when no config file was loaded or a lookup
// misses. They mirror data/game_config.json.
var defaultTier = TableTier{ID: "newbies", BaseBet: 100, SeatCount: 2, BotDifficulty: "easy"}

var defaultDifficulties = map[string]DifficultyProfile{
	"easy":   {ID: "easy", MemoryCapability: 25, PlayDelayTicks: 3},
	"medium": {ID: "medium", MemoryCapability: 50, PlayDelayTicks: 3},
	"hard":   {ID: "hard", MemoryCapability: 90, PlayDelayTicks: 3},
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTier returns the table tier for the given ID, falling back to the
// default tier and finally to a baked-in table.
func GetTier(tierID string) TableTier {
	if cfg == nil {
		return defaultTier
	}

	target := tierID
	if target == "" {
		target = cfg.DefaultTier
	}

	for _, tier := range cfg.Tiers {
		if tier.ID == target {
			return tier
		}
	}
	for _, tier := range cfg.Tiers {
		if tier.ID == cfg.DefaultTier {
			return tier
		}
	}
	return defaultTier
}

// GetDifficulty returns the bot profile for the given difficulty ID,
// falling back to the easy profile.
func GetDifficulty(id string) DifficultyProfile {
	if cfg != nil {
		for _, d := range cfg.Difficulties {
			if d.ID == id {
				return d
			}
		}
	}
	if d, ok := defaultDifficulties[id]; ok {
		return d
	}
	return defaultDifficulties["easy"]
}
