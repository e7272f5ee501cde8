package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pisti/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickPlayRequest selects the table tier to join. An empty payload joins
// the default tier.
type QuickPlayRequest struct {
	Tier string `json:"tier"`
}

// QuickPlayResponse is the payload returned to clients when requesting a
// lobby-capable match.
type QuickPlayResponse struct {
	MatchID string `json:"match_id"`
	Tier    string `json:"tier"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcQuickPlay, rpcQuickPlay)
}

func rpcQuickPlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request QuickPlayRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			return "", runtime.NewError("malformed quick play payload", 3)
		}
	}
	tier := config.GetTier(request.Tier)

	// Find an open lobby at the requested tier.
	query := fmt.Sprintf("+label.%s:>=1 +label.%s:pisti +label.%s:lobby +label.%s:%s",
		MatchLabelKey_OpenSeats, MatchLabelKey_Game, MatchLabelKey_State, MatchLabelKey_Tier, tier.ID)

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := tier.SeatCount - 1 // leave room for the caller

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcQuickPlay: MatchList error: %v", err)
		return "", err
	}

	if len(matches) > 0 {
		resp := QuickPlayResponse{MatchID: matches[0].MatchId, Tier: tier.ID, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create a new match; seat and owner assignment happens in MatchJoin.
	matchID, err := nk.MatchCreate(ctx, MatchNamePisti, map[string]interface{}{"tier": tier.ID})
	if err != nil {
		logger.Error("rpcQuickPlay: MatchCreate error: %v", err)
		return "", err
	}

	resp := QuickPlayResponse{MatchID: matchID, Tier: tier.ID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
