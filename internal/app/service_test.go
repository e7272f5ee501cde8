package app

import (
	"errors"
	"math/rand"
	"testing"

	"pisti/internal/domain"
)

func twoSeats() []SeatSpec {
	return []SeatSpec{{UserID: "u1"}, {UserID: "u2", Bot: true}}
}

func startGame(t *testing.T, seed int64, seats []SeatSpec) (*Service, *domain.Game, []Event) {
	t.Helper()
	svc := NewService(rand.New(rand.NewSource(seed)))
	game, evs, err := svc.StartGame(seats, 100)
	if err != nil {
		t.Fatalf("start game error: %v", err)
	}
	return svc, game, evs
}

// pickCard is the greedy driver used by the simulation tests: match the top
// rank when possible, otherwise shed the first non-Jack.
func pickCard(g *domain.Game) domain.CardID {
	seat := g.ActiveSeat
	hand := g.Seats[seat].Hand
	if top, ok := g.TopOfPile(); ok {
		for _, id := range hand {
			if g.Card(id).Rank == top.Rank {
				return id
			}
		}
	}
	for _, id := range hand {
		if g.Card(id).Rank != domain.RankJack {
			return id
		}
	}
	return hand[0]
}

func TestStartGameLayout(t *testing.T) {
	_, game, evs := startGame(t, 42, twoSeats())

	if game.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", game.Phase)
	}
	if len(game.Pile) != 4 {
		t.Fatalf("opening pile = %d cards, want 4", len(game.Pile))
	}
	if len(game.Deck) != 52-4-2*4 {
		t.Fatalf("deck = %d cards, want 40", len(game.Deck))
	}

	handEvents := 0
	started := false
	for _, ev := range evs {
		switch ev.Kind {
		case EventHandDealt:
			handEvents++
			payload := ev.Payload.(HandDealtPayload)
			if len(payload.Cards) != domain.HandSize {
				t.Fatalf("hand size = %d, want %d", len(payload.Cards), domain.HandSize)
			}
			if len(ev.Recipients) != 1 {
				t.Fatalf("hand_dealt recipients = %v, want exactly the seat's user", ev.Recipients)
			}
		case EventGameStarted:
			started = true
			payload := ev.Payload.(GameStartedPayload)
			if payload.GameID == "" {
				t.Fatal("game_started without a game ID")
			}
			top, _ := game.TopOfPile()
			if payload.FaceUpCard != top {
				t.Fatalf("face-up card = %+v, want pile top %+v", payload.FaceUpCard, top)
			}
		}
	}
	if handEvents != 2 || !started {
		t.Fatalf("events: %d hand_dealt, started=%v", handEvents, started)
	}
}

func TestStartGameRejectsBadSeatCounts(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	for _, n := range []int{0, 1, 3, 5} {
		seats := make([]SeatSpec, n)
		if _, _, err := svc.StartGame(seats, 100); !errors.Is(err, ErrBadSeatCount) {
			t.Errorf("%d seats: got %v, want ErrBadSeatCount", n, err)
		}
	}
}

func TestSubmitPlayGuards(t *testing.T) {
	svc, game, _ := startGame(t, 7, twoSeats())

	idle := (game.ActiveSeat + 1) % 2
	idleCard := game.Seats[idle].Hand[0]
	activeCard := game.Seats[game.ActiveSeat].Hand[0]

	if _, err := svc.SubmitPlay(game, 9, activeCard); !errors.Is(err, ErrUnknownSeat) {
		t.Errorf("bad seat: got %v, want ErrUnknownSeat", err)
	}
	if _, err := svc.SubmitPlay(game, idle, idleCard); !errors.Is(err, ErrNotActiveSeat) {
		t.Errorf("off turn: got %v, want ErrNotActiveSeat", err)
	}
	if _, err := svc.SubmitPlay(game, game.ActiveSeat, idleCard); !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("foreign card: got %v, want ErrCardNotInHand", err)
	}

	// Rejected plays leave the game untouched.
	if len(game.Pile) != 4 || game.TurnsInDeal != 0 {
		t.Fatalf("rejected plays changed state: pile=%d turns=%d", len(game.Pile), game.TurnsInDeal)
	}

	game.Phase = domain.PhaseEnded
	if _, err := svc.SubmitPlay(game, game.ActiveSeat, activeCard); !errors.Is(err, ErrGameAlreadyOver) {
		t.Errorf("ended game: got %v, want ErrGameAlreadyOver", err)
	}
}

func TestNoCapturePlayAdvancesTurn(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		svc, game, _ := startGame(t, seed, twoSeats())
		seat := game.ActiveSeat
		top, _ := game.TopOfPile()

		var card domain.CardID
		found := false
		for _, id := range game.Seats[seat].Hand {
			c := game.Card(id)
			if c.Rank != top.Rank && c.Rank != domain.RankJack {
				card, found = id, true
				break
			}
		}
		if !found {
			continue
		}

		evs, err := svc.SubmitPlay(game, seat, card)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(game.Pile) != 5 {
			t.Fatalf("seed %d: pile = %d, want 5", seed, len(game.Pile))
		}
		if game.ActiveSeat != (seat+1)%2 {
			t.Fatalf("seed %d: turn did not advance", seed)
		}
		for _, ev := range evs {
			if ev.Kind == EventCardsCaptured {
				t.Fatalf("seed %d: unexpected capture", seed)
			}
		}
		return
	}
	t.Fatal("no seed produced a plain non-matching play")
}

func TestJackCapturesWholePile(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		svc, game, _ := startGame(t, seed, twoSeats())
		seat := game.ActiveSeat
		top, _ := game.TopOfPile()
		if top.Rank == domain.RankJack {
			continue
		}

		var jack domain.CardID
		found := false
		for _, id := range game.Seats[seat].Hand {
			if g := game.Card(id); g.Rank == domain.RankJack {
				jack, found = id, true
				break
			}
		}
		if !found {
			continue
		}

		evs, err := svc.SubmitPlay(game, seat, jack)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for _, ev := range evs {
			if ev.Kind == EventCardsCaptured {
				payload := ev.Payload.(CardsCapturedPayload)
				if payload.Pisti {
					t.Fatalf("seed %d: a four-card pile cannot be a pisti", seed)
				}
				if len(payload.Cards) != 5 {
					t.Fatalf("seed %d: captured %d cards, want the whole pile of 5", seed, len(payload.Cards))
				}
				if len(game.Pile) != 0 {
					t.Fatalf("seed %d: pile not emptied", seed)
				}
				return
			}
		}
		t.Fatalf("seed %d: jack play produced no capture", seed)
	}
	t.Fatal("no seed opened with a jack in the active hand")
}

func TestPistiCaptureCarriesBonus(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		svc, game, _ := startGame(t, seed, twoSeats())
		for game.Phase == domain.PhasePlaying {
			evs, err := svc.SubmitPlay(game, game.ActiveSeat, pickCard(game))
			if err != nil {
				t.Fatalf("seed %d: %v", seed, err)
			}
			for _, ev := range evs {
				if ev.Kind != EventCardsCaptured {
					continue
				}
				payload := ev.Payload.(CardsCapturedPayload)
				if !payload.Pisti {
					continue
				}
				if len(payload.Cards) != 2 {
					t.Fatalf("seed %d: pisti captured %d cards, want 2", seed, len(payload.Cards))
				}
				if payload.Cards[0].Rank != payload.Cards[1].Rank {
					t.Fatalf("seed %d: pisti ranks differ: %+v", seed, payload.Cards)
				}
				for _, c := range payload.Cards {
					if c.Bonus < domain.PistiBonus {
						t.Fatalf("seed %d: pisti card bonus = %d, want at least %d", seed, c.Bonus, domain.PistiBonus)
					}
				}
				return
			}
		}
	}
	t.Fatal("no pisti occurred across 200 seeded games")
}

func TestRedealAfterEveryHandPlayedOut(t *testing.T) {
	svc, game, _ := startGame(t, 3, twoSeats())
	dealPlays := len(game.Seats) * domain.HandSize

	for i := 1; i <= dealPlays; i++ {
		evs, err := svc.SubmitPlay(game, game.ActiveSeat, pickCard(game))
		if err != nil {
			t.Fatalf("play %d: %v", i, err)
		}

		redealt := false
		for _, ev := range evs {
			if ev.Kind == EventRoundRedealt {
				redealt = true
				payload := ev.Payload.(RoundRedealtPayload)
				if payload.StartSeat != game.ActiveSeat {
					t.Fatalf("redeal start seat %d, active seat %d", payload.StartSeat, game.ActiveSeat)
				}
			}
		}
		if redealt != (i == dealPlays) {
			t.Fatalf("play %d of %d: redealt = %v", i, dealPlays, redealt)
		}
	}

	if game.TurnsInDeal != 0 {
		t.Fatalf("turn counter = %d after redeal, want 0", game.TurnsInDeal)
	}
	for seat := range game.Seats {
		if got := len(game.Seats[seat].Hand); got != domain.HandSize {
			t.Fatalf("seat %d holds %d cards after redeal, want %d", seat, got, domain.HandSize)
		}
	}
}

func TestFullGameAccountsForEveryCard(t *testing.T) {
	for _, seats := range [][]SeatSpec{
		twoSeats(),
		{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3", Bot: true}, {UserID: "u4", Bot: true}},
	} {
		for seed := int64(1); seed <= 5; seed++ {
			svc, game, _ := startGame(t, seed, seats)

			var last []Event
			turns := 0
			for game.Phase == domain.PhasePlaying {
				evs, err := svc.SubmitPlay(game, game.ActiveSeat, pickCard(game))
				if err != nil {
					t.Fatalf("%d seats seed %d: %v", len(seats), seed, err)
				}
				last = evs
				if turns++; turns > domain.NumCards {
					t.Fatalf("%d seats seed %d: game did not terminate", len(seats), seed)
				}
			}

			if game.Phase != domain.PhaseEnded {
				t.Fatalf("%d seats seed %d: phase = %s", len(seats), seed, game.Phase)
			}
			if len(game.Deck) != 0 {
				t.Fatalf("%d seats seed %d: deck not exhausted", len(seats), seed)
			}

			collected := len(game.Pile)
			for _, s := range game.Seats {
				collected += len(s.Collected)
				if len(s.Hand) != 0 {
					t.Fatalf("%d seats seed %d: hand not empty at game end", len(seats), seed)
				}
			}
			if collected != domain.NumCards {
				t.Fatalf("%d seats seed %d: %d cards accounted for, want %d", len(seats), seed, collected, domain.NumCards)
			}

			ended := false
			for _, ev := range last {
				if ev.Kind == EventGameEnded {
					ended = true
					payload := ev.Payload.(GameEndedPayload)
					if payload.WinnerSeat < 0 || payload.WinnerSeat >= len(seats) {
						t.Fatalf("%d seats seed %d: winner seat %d out of range", len(seats), seed, payload.WinnerSeat)
					}
					if len(payload.Scores) != len(seats) {
						t.Fatalf("%d seats seed %d: %d score reports", len(seats), seed, len(payload.Scores))
					}
				}
			}
			if !ended {
				t.Fatalf("%d seats seed %d: final turn emitted no game_ended", len(seats), seed)
			}
		}
	}
}
