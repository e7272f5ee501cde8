package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"pisti/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	statsCollection = "stats"
	statsKey        = "player_stats_v1"
)

// NakamaStatsAdapter implements ports.StatsPort on Nakama storage. Records
// are readable by their owner so clients can render the profile screen
// directly.
type NakamaStatsAdapter struct {
	nk runtime.NakamaModule
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(nk runtime.NakamaModule) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{nk: nk}
}

// LoadStats reads the stats record for a user.
func (a *NakamaStatsAdapter) LoadStats(ctx context.Context, userID string) (ports.PlayerStats, bool, error) {
	reads := []*runtime.StorageRead{{
		Collection: statsCollection,
		Key:        statsKey,
		UserID:     userID,
	}}
	objects, err := a.nk.StorageRead(ctx, reads)
	if err != nil {
		return ports.PlayerStats{}, false, fmt.Errorf("failed to read stats: %w", err)
	}
	if len(objects) == 0 {
		return ports.PlayerStats{}, false, nil
	}

	var record ports.PlayerStats
	if err := json.Unmarshal([]byte(objects[0].Value), &record); err != nil {
		return ports.PlayerStats{}, false, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return record, true, nil
}

// SaveStats writes the stats record for a user.
func (a *NakamaStatsAdapter) SaveStats(ctx context.Context, userID string, record ports.PlayerStats) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	writes := []*runtime.StorageWrite{{
		Collection:      statsCollection,
		Key:             statsKey,
		UserID:          userID,
		Value:           string(value),
		PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}}
	if _, err := a.nk.StorageWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
