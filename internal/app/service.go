package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pisti/internal/domain"
)

// Service contains the game use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrBadSeatCount       = errors.New("seat count must be 2 or 4")
	ErrGameAlreadyOver    = errors.New("game is already over")
	ErrUnknownSeat        = errors.New("seat does not exist")
	ErrNotActiveSeat      = errors.New("seat is not on turn")
	ErrCardNotInHand      = errors.New("card is not in the seat's hand")
	ErrInvariantViolation = errors.New("card ownership invariant violated")
)

// SeatSpec describes one seat of a new game in rotation order.
type SeatSpec struct {
	UserID string
	Bot    bool
}

// StartGame creates a game for the given seats, shuffles and deals the
// opening layout, and emits the start events. Hands go out as targeted
// hand_dealt events; the broadcast game_started only carries the face-up
// pile card.
func (s *Service) StartGame(seats []SeatSpec, baseBet int64) (*domain.Game, []Event, error) {
	if len(seats) != 2 && len(seats) != 4 {
		return nil, nil, ErrBadSeatCount
	}

	domainSeats := make([]*domain.Seat, len(seats))
	for i, spec := range seats {
		domainSeats[i] = &domain.Seat{UserID: spec.UserID, Bot: spec.Bot}
	}

	dealer := s.rng.Intn(len(seats))
	g := domain.NewGame(uuid.NewString(), domainSeats, dealer, s.rng)
	g.BaseBet = baseBet
	domain.DealInitial(g)

	events := make([]Event, 0, len(seats)+1)
	faceUp, _ := g.TopOfPile()
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:     g.ID,
			DealerSeat: g.DealerStart,
			ActiveSeat: g.ActiveSeat,
			FaceUpCard: faceUp,
			PileSize:   len(g.Pile),
			BaseBet:    baseBet,
		},
	})
	events = append(events, handDealtEvents(g)...)

	return g, events, nil
}

// SubmitPlay applies one card play for the given seat: the card moves onto
// the pile, captures resolve, the turn advances, and hands are refilled or
// the game finalized when the deal runs out. A returned error means the
// play was rejected and the game state is unchanged, except for
// ErrInvariantViolation which aborts the game.
func (s *Service) SubmitPlay(g *domain.Game, seat int, card domain.CardID) ([]Event, error) {
	if g.Phase != domain.PhasePlaying {
		return nil, ErrGameAlreadyOver
	}
	if seat < 0 || seat >= len(g.Seats) {
		return nil, ErrUnknownSeat
	}
	if seat != g.ActiveSeat {
		return nil, ErrNotActiveSeat
	}
	if !g.HandHolds(seat, card) {
		return nil, ErrCardNotInHand
	}

	pileBefore := len(g.Pile)
	topRank := 0
	if top, ok := g.TopOfPile(); ok {
		topRank = top.Rank
	}
	played := g.Card(card)

	if err := g.MoveHandToPile(seat, card); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCardNotInHand, err)
	}
	g.TurnsInDeal++

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: seat, Card: played},
	}}

	switch domain.ResolvePlay(pileBefore, topRank, played.Rank) {
	case domain.PistiCapture:
		g.AwardPistiBonus()
		captured := g.CapturePile(seat)
		events = append(events, capturedEvent(g, seat, captured, true))
	case domain.MatchCapture:
		captured := g.CapturePile(seat)
		events = append(events, capturedEvent(g, seat, captured, false))
	}

	if err := g.CheckIntegrity(); err != nil {
		g.Phase = domain.PhaseAborted
		return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
	}

	if g.TurnsInDeal == len(g.Seats)*domain.HandSize {
		if domain.Redeal(g) {
			g.ActiveSeat = g.RedealStart()
			g.TurnsInDeal = 0
			events = append(events, Event{
				Kind:    EventRoundRedealt,
				Payload: RoundRedealtPayload{StartSeat: g.ActiveSeat, DeckLeft: len(g.Deck)},
			})
			events = append(events, handDealtEvents(g)...)
			events = append(events, turnEvent(g))
			return events, nil
		}
		return append(events, s.finalize(g)...), nil
	}

	g.ActiveSeat = (seat + 1) % len(g.Seats)
	events = append(events, turnEvent(g))
	return events, nil
}

// finalize awards the pile remnant to the last capturer, scores the game
// and emits game_ended. A game where nobody ever captured has no remnant
// owner and the remaining pile cards score for no one.
func (s *Service) finalize(g *domain.Game) []Event {
	var events []Event
	if len(g.Pile) > 0 && g.LastCaptureSeat >= 0 {
		seat := g.LastCaptureSeat
		captured := g.CapturePile(seat)
		events = append(events, capturedEvent(g, seat, captured, false))
	}

	g.Phase = domain.PhaseEnded
	scores := domain.FinalScores(g)
	winner := domain.WinnerSeat(scores)
	events = append(events, Event{
		Kind: EventGameEnded,
		Payload: GameEndedPayload{
			Scores:       scores,
			WinnerSeat:   winner,
			WinnerUserID: g.Seats[winner].UserID,
		},
	})
	return events
}

func handDealtEvents(g *domain.Game) []Event {
	events := make([]Event, 0, len(g.Seats))
	for i, seat := range g.Seats {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: i, Cards: g.HandCards(i)},
			Recipients: []string{seat.UserID},
		})
	}
	return events
}

func capturedEvent(g *domain.Game, seat int, ids []domain.CardID, pisti bool) Event {
	cards := make([]domain.Card, len(ids))
	for i, id := range ids {
		cards[i] = g.Card(id)
	}
	return Event{
		Kind:    EventCardsCaptured,
		Payload: CardsCapturedPayload{Seat: seat, Cards: cards, Pisti: pisti},
	}
}

func turnEvent(g *domain.Game) Event {
	return Event{
		Kind:    EventTurnAdvanced,
		Payload: TurnAdvancedPayload{ActiveSeat: g.ActiveSeat},
	}
}
