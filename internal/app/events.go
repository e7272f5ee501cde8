package app

import "pisti/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventPlayerJoined  EventKind = "player_joined"
	EventPlayerLeft    EventKind = "player_left"
	EventGameStarted   EventKind = "game_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventCardPlayed    EventKind = "card_played"
	EventCardsCaptured EventKind = "cards_captured"
	EventTurnAdvanced  EventKind = "turn_advanced"
	EventRoundRedealt  EventKind = "round_redealt"
	EventGameEnded     EventKind = "game_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type PlayerJoinedPayload struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
	Owner  bool   `json:"owner"`
}

type PlayerLeftPayload struct {
	UserID string `json:"user_id"`
}

type GameStartedPayload struct {
	GameID     string      `json:"game_id"`
	DealerSeat int         `json:"dealer_seat"`
	ActiveSeat int         `json:"active_seat"`
	FaceUpCard domain.Card `json:"face_up_card"`
	PileSize   int         `json:"pile_size"`
	BaseBet    int64       `json:"base_bet"`
}

// HandDealtPayload is sent only to the seat's own user.
type HandDealtPayload struct {
	Seat  int           `json:"seat"`
	Cards []domain.Card `json:"cards"`
}

type CardPlayedPayload struct {
	Seat int         `json:"seat"`
	Card domain.Card `json:"card"`
}

// CardsCapturedPayload announces a pile capture. Pisti marks the paired
// two-card capture that carries the bonus.
type CardsCapturedPayload struct {
	Seat  int           `json:"seat"`
	Cards []domain.Card `json:"cards"`
	Pisti bool          `json:"pisti"`
}

type TurnAdvancedPayload struct {
	ActiveSeat int `json:"active_seat"`
}

// RoundRedealtPayload announces fresh hands; the cards themselves go out
// per seat as hand_dealt events.
type RoundRedealtPayload struct {
	StartSeat int `json:"start_seat"`
	DeckLeft  int `json:"deck_left"`
}

type GameEndedPayload struct {
	Scores       []domain.ScoreReport `json:"scores"`
	WinnerSeat   int                  `json:"winner_seat"`
	WinnerUserID string               `json:"winner_user_id"`
}
