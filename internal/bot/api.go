package bot

import (
	"errors"
	"math/rand"

	"pisti/internal/bot/brain"
	"pisti/internal/domain"
)

// Level selects which decision policy a bot seat uses.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
)

// ParseLevel maps a config string to a Level, defaulting to easy.
func ParseLevel(s string) Level {
	switch s {
	case "hard":
		return LevelHard
	case "medium":
		return LevelMedium
	default:
		return LevelEasy
	}
}

// String returns the config spelling of the level.
func (l Level) String() string {
	switch l {
	case LevelHard:
		return "hard"
	case LevelMedium:
		return "medium"
	default:
		return "easy"
	}
}

// ErrEmptyHand is returned when a decision is requested for a seat with no
// cards; an empty hand is a caller bug, never a valid pass.
var ErrEmptyHand = errors.New("cannot choose a card from an empty hand")

// View is the snapshot a strategy decides on. HandIDs and Hand are
// parallel: HandIDs[i] is the card to submit when the strategy picks
// Hand[i]. Strategies never see the Game, so a chosen card is always a
// card the seat actually holds.
type View struct {
	HandIDs    []domain.CardID
	Hand       []domain.Card
	LastPlayed *domain.Card // top of the pile, nil when the pile is empty
	Pile       []domain.Card
}

// Brain is the decision policy interface all difficulty tiers implement.
// ChooseCard must be a pure function of its inputs: the same view, memory
// and rng state always yield the same card.
type Brain interface {
	ChooseCard(view View, memory *brain.RankMemory, rng *rand.Rand) (domain.CardID, error)
}
