package bot

import (
	"errors"
	"math/rand"
	"time"

	"pisti/internal/bot/brain"
	"pisti/internal/domain"
)

var (
	ErrNotBotTurn = errors.New("it is not the bot's turn")
	ErrNotBotSeat = errors.New("seat is not bot controlled")
	ErrGameOver   = errors.New("game is not in play")
)

// Agent binds a decision policy and a rank memory to one seat of a game.
// The memory persists across deals and is only cleared by Reset, so an
// agent must not be shared between games.
type Agent struct {
	Seat  int
	Level Level

	capability int
	brain      Brain
	memory     *brain.RankMemory
	rng        *rand.Rand
}

// NewAgent creates an agent for the given seat. memoryCapability is the
// percent chance a played rank is committed to memory. A nil rng gets a
// time-seeded one.
func NewAgent(seat int, level Level, memoryCapability int, rng *rand.Rand) (*Agent, error) {
	b, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{
		Seat:       seat,
		Level:      level,
		capability: memoryCapability,
		brain:      b,
		memory:     brain.NewRankMemory(),
		rng:        rng,
	}, nil
}

// Play picks the card the agent's seat should submit for the current turn.
// It only reads the state a human in that seat could see.
func (a *Agent) Play(g *domain.Game) (domain.CardID, error) {
	if g.Phase != domain.PhasePlaying {
		return 0, ErrGameOver
	}
	if g.ActiveSeat != a.Seat {
		return 0, ErrNotBotTurn
	}
	if !g.Seats[a.Seat].Bot {
		return 0, ErrNotBotSeat
	}

	view := View{
		HandIDs: g.Seats[a.Seat].Hand,
		Hand:    g.HandCards(a.Seat),
		Pile:    g.PileCards(),
	}
	if top, ok := g.TopOfPile(); ok {
		c := top
		view.LastPlayed = &c
	}

	return a.brain.ChooseCard(view, a.memory, a.rng)
}

// Observe feeds a card played by any seat into the agent's memory. Whether
// the rank sticks depends on the agent's memory capability.
func (a *Agent) Observe(c domain.Card) {
	a.memory.Observe(c.Rank, a.capability, a.rng)
}

// Reset clears the memory for a fresh game.
func (a *Agent) Reset() {
	a.memory.Reset()
}
