package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Identity is one entry of the bot pool. MemoryCapability overrides the
// difficulty default when non-zero.
type Identity struct {
	DeviceID         string `json:"device_id"`
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	DisplayName      string `json:"display_name"`
	Difficulty       string `json:"difficulty"` // "easy", "medium", "hard"
	MemoryCapability int    `json:"memory_capability,omitempty"`
	AvatarIndex      int    `json:"avatar_index"`
}

var (
	identities    []Identity
	identityByID  map[string]Identity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the bot pool from the given JSON file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		identityByID = make(map[string]Identity, len(identities))
		for _, id := range identities {
			if id.UserID != "" {
				identityByID[id.UserID] = id
			}
		}
	})
	return loadErr
}

// ProvisionBots ensures every pool entry has a Nakama account carrying the
// is_bot metadata, and fills in the user IDs assigned by the server.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	provisionOnce.Do(func() {
		for i := range identities {
			id := &identities[i]
			if id.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, id.DeviceID, id.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: authenticate %s: %v", id.Username, err)
				continue
			}
			id.UserID = userID
			id.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   id.Difficulty,
				"avatar_index": id.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, id.Username, metadata, id.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: update account %s: %v", userID, err)
			}

			identityByID[id.UserID] = *id
			logger.Info("ProvisionBots: %s (%s) ready, difficulty %s", id.DisplayName, userID, id.Difficulty)
		}
	})
	return nil
}

// IdentityAt returns a pool entry by index, wrapping around the pool size.
// With an empty pool it fabricates a placeholder so matches can still fill.
func IdentityAt(index int) Identity {
	if len(identities) == 0 {
		return Identity{
			UserID:      fmt.Sprintf("bot-%d", index),
			Username:    fmt.Sprintf("bot_%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
			Difficulty:  "easy",
		}
	}
	return identities[index%len(identities)]
}

// LookupIdentity returns the pool entry for a user ID.
func LookupIdentity(userID string) (Identity, bool) {
	id, ok := identityByID[userID]
	return id, ok
}

// IsBot reports whether the user ID belongs to the bot pool.
func IsBot(userID string) bool {
	_, ok := identityByID[userID]
	return ok
}
