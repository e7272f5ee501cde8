package domain

import (
	"fmt"
	"math/rand"
)

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhasePlaying indicates the game is actively in progress.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates the game finished normally.
	PhaseEnded Phase = "ended"
	// PhaseAborted indicates the game was stopped after an integrity failure
	// and its state must not be trusted for scoring.
	PhaseAborted Phase = "aborted"
)

// Seat holds the per-player state for a game.
type Seat struct {
	UserID    string
	Bot       bool
	Hand      []CardID
	Collected []CardID
}

type holderKind uint8

const (
	inDeck holderKind = iota
	inPile
	inHand
	inCollected
)

// holder records which container currently owns a card.
type holder struct {
	kind holderKind
	seat int
}

// Game captures the authoritative state for a single game instance.
// The card arena and the owner table are private: every transfer goes
// through a Game method, so a card is never visible in two containers.
type Game struct {
	ID    string
	Phase Phase

	cards  [NumCards]Card
	owners [NumCards]holder

	Deck []CardID // undealt cards, drawn from the front
	Pile []CardID // table play pile, last element on top

	Seats []*Seat

	ActiveSeat      int
	DealerStart     int
	TurnsInDeal     int
	LastCaptureSeat int // -1 until the first capture
	BaseBet         int64
}

// NewGame builds a game with a freshly shuffled deck, the given seats in
// rotation order, and the dealer position already chosen.
func NewGame(id string, seats []*Seat, dealerStart int, rng *rand.Rand) *Game {
	g := &Game{
		ID:              id,
		Phase:           PhasePlaying,
		Seats:           seats,
		ActiveSeat:      dealerStart,
		DealerStart:     dealerStart,
		LastCaptureSeat: -1,
	}

	i := 0
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			g.cards[i] = Card{Suit: suit, Rank: rank, Point: cardPoint(suit, rank)}
			i++
		}
	}

	g.Deck = make([]CardID, NumCards)
	for i := range g.Deck {
		g.Deck[i] = CardID(i)
	}
	rng.Shuffle(len(g.Deck), func(i, j int) { g.Deck[i], g.Deck[j] = g.Deck[j], g.Deck[i] })

	return g
}

// Card returns a snapshot of the card with the given ID.
func (g *Game) Card(id CardID) Card {
	return g.cards[id]
}

// TopOfPile returns the face-up card on top of the table pile.
func (g *Game) TopOfPile() (Card, bool) {
	if len(g.Pile) == 0 {
		return Card{}, false
	}
	return g.cards[g.Pile[len(g.Pile)-1]], true
}

// PileCards returns snapshots of the pile from bottom to top.
func (g *Game) PileCards() []Card {
	out := make([]Card, len(g.Pile))
	for i, id := range g.Pile {
		out[i] = g.cards[id]
	}
	return out
}

// HandCards returns snapshots of a seat's hand in hand order.
func (g *Game) HandCards(seat int) []Card {
	out := make([]Card, len(g.Seats[seat].Hand))
	for i, id := range g.Seats[seat].Hand {
		out[i] = g.cards[id]
	}
	return out
}

// HandHolds reports whether the seat's hand currently owns the card,
// checked against both the owner table and the hand container.
func (g *Game) HandHolds(seat int, id CardID) bool {
	if int(id) >= NumCards {
		return false
	}
	if g.owners[id] != (holder{kind: inHand, seat: seat}) {
		return false
	}
	for _, h := range g.Seats[seat].Hand {
		if h == id {
			return true
		}
	}
	return false
}

// MoveHandToPile transfers a card from a seat's hand onto the top of the
// table pile as a single logical step.
func (g *Game) MoveHandToPile(seat int, id CardID) error {
	hand := g.Seats[seat].Hand
	at := -1
	for i, h := range hand {
		if h == id {
			at = i
			break
		}
	}
	if at < 0 || g.owners[id] != (holder{kind: inHand, seat: seat}) {
		return fmt.Errorf("card %d is not held by seat %d", id, seat)
	}
	g.Seats[seat].Hand = append(hand[:at], hand[at+1:]...)
	g.Pile = append(g.Pile, id)
	g.owners[id] = holder{kind: inPile}
	return nil
}

// AwardPistiBonus adds the pair bonus to both cards of a two-card pile.
func (g *Game) AwardPistiBonus() {
	for _, id := range g.Pile {
		g.cards[id].Bonus += PistiBonus
	}
}

// CapturePile empties the whole table pile into the seat's collected pile
// and records the seat as the last capturer. Returns the captured IDs in
// pile order.
func (g *Game) CapturePile(seat int) []CardID {
	captured := append([]CardID(nil), g.Pile...)
	for _, id := range captured {
		g.owners[id] = holder{kind: inCollected, seat: seat}
	}
	g.Seats[seat].Collected = append(g.Seats[seat].Collected, captured...)
	g.Pile = g.Pile[:0]
	g.LastCaptureSeat = seat
	return captured
}

// drawTop removes and returns the next undealt card.
func (g *Game) drawTop() (CardID, bool) {
	if len(g.Deck) == 0 {
		return 0, false
	}
	id := g.Deck[0]
	g.Deck = g.Deck[1:]
	return id, true
}

// DrawToPile moves the next deck card onto the table pile.
func (g *Game) DrawToPile() bool {
	id, ok := g.drawTop()
	if !ok {
		return false
	}
	g.Pile = append(g.Pile, id)
	g.owners[id] = holder{kind: inPile}
	return true
}

// DrawToHand moves the next deck card into a seat's hand.
func (g *Game) DrawToHand(seat int) bool {
	id, ok := g.drawTop()
	if !ok {
		return false
	}
	g.Seats[seat].Hand = append(g.Seats[seat].Hand, id)
	g.owners[id] = holder{kind: inHand, seat: seat}
	return true
}

// CheckIntegrity verifies the single-owner invariant: every card belongs to
// exactly the container the owner table says, and each container agrees.
// A non-nil error means capture accounting is undefined and the game must
// be aborted.
func (g *Game) CheckIntegrity() error {
	seen := [NumCards]int{}

	check := func(ids []CardID, want holder, label string) error {
		for _, id := range ids {
			seen[id]++
			if seen[id] > 1 {
				return fmt.Errorf("card %d appears in more than one container", id)
			}
			if g.owners[id] != want {
				return fmt.Errorf("card %d found in %s but owner table disagrees", id, label)
			}
		}
		return nil
	}

	if err := check(g.Deck, holder{kind: inDeck}, "deck"); err != nil {
		return err
	}
	if err := check(g.Pile, holder{kind: inPile}, "pile"); err != nil {
		return err
	}
	for i, s := range g.Seats {
		if err := check(s.Hand, holder{kind: inHand, seat: i}, fmt.Sprintf("seat %d hand", i)); err != nil {
			return err
		}
		if err := check(s.Collected, holder{kind: inCollected, seat: i}, fmt.Sprintf("seat %d collected", i)); err != nil {
			return err
		}
	}

	for id, n := range seen {
		if n != 1 {
			return fmt.Errorf("card %d is owned by %d containers", id, n)
		}
	}
	return nil
}
