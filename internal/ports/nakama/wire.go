package nakama

import (
	"encoding/json"
	"fmt"

	"pisti/internal/app"
	"pisti/internal/domain"
)

// MatchLabel is the JSON label indexed by Nakama for MatchList queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	State string `json:"state"`
	Tier  string `json:"tier"`
}

func (l MatchLabel) Marshal() (string, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return "", fmt.Errorf("failed to marshal match label: %w", err)
	}
	return string(b), nil
}

// PlayCardRequest is the client payload for OpPlayCard.
type PlayCardRequest struct {
	CardID domain.CardID `json:"card_id"`
}

// StartGameRequest is the client payload for OpStartGame. Currently empty,
// parsed anyway to catch client mismatches early.
type StartGameRequest struct{}

// GameErrorEvent is sent privately to the user whose action was rejected.
type GameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlayerSnapshot is one occupied seat in the match snapshot.
type PlayerSnapshot struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
	Balance     int64  `json:"balance"`
	HandCount   int    `json:"hand_count"`
	Collected   int    `json:"collected"`
}

// MatchSnapshot is the full lobby/table view broadcast on joins and seat
// changes.
type MatchSnapshot struct {
	Seats     []string         `json:"seats"`
	OwnerSeat int              `json:"owner_seat"`
	Tier      string           `json:"tier"`
	Tick      int64            `json:"tick"`
	Players   []PlayerSnapshot `json:"players"`
}

// opCodeFor maps an app event kind to its wire op code.
func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventCardsCaptured:
		return OpCardsCaptured, true
	case app.EventTurnAdvanced:
		return OpTurnAdvanced, true
	case app.EventRoundRedealt:
		return OpRoundRedealt, true
	case app.EventGameEnded:
		return OpGameEnded, true
	default:
		return 0, false
	}
}
