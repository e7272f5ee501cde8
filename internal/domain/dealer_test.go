package domain

import (
	"testing"
)

func TestDealInitial(t *testing.T) {
	tests := []struct {
		name  string
		seats int
	}{
		{name: "Two players", seats: 2},
		{name: "Four players", seats: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.seats, 7)
			DealInitial(g)

			if len(g.Pile) != InitialGroundCards+1 {
				t.Errorf("pile has %d cards, want %d", len(g.Pile), InitialGroundCards+1)
			}
			for i, s := range g.Seats {
				if len(s.Hand) != HandSize {
					t.Errorf("seat %d hand has %d cards, want %d", i, len(s.Hand), HandSize)
				}
			}
			wantDeck := NumCards - (InitialGroundCards + 1) - tt.seats*HandSize
			if len(g.Deck) != wantDeck {
				t.Errorf("deck has %d cards, want %d", len(g.Deck), wantDeck)
			}
			if err := g.CheckIntegrity(); err != nil {
				t.Errorf("integrity broken after initial deal: %v", err)
			}
		})
	}
}

func TestRedealStartsAfterLastCapturer(t *testing.T) {
	g := newTestGame(t, 4, 8)
	DealInitial(g)

	g.LastCaptureSeat = 2
	firstCard := g.Deck[0]
	for _, s := range g.Seats {
		s.Hand = s.Hand[:0]
	}

	if !Redeal(g) {
		t.Fatal("redeal failed with a non-empty deck")
	}
	if g.RedealStart() != 3 {
		t.Errorf("RedealStart() = %d, want 3", g.RedealStart())
	}
	if g.Seats[3].Hand[0] != firstCard {
		t.Errorf("seat after the capturer did not receive the first card")
	}
	for i, s := range g.Seats {
		if len(s.Hand) != HandSize {
			t.Errorf("seat %d has %d cards after redeal, want %d", i, len(s.Hand), HandSize)
		}
	}
}

func TestRedealExhaustedDeck(t *testing.T) {
	g := newTestGame(t, 2, 9)
	g.Deck = g.Deck[:0]

	if Redeal(g) {
		t.Error("redeal reported success on an empty deck")
	}
}

func TestDeckDepletesExactly(t *testing.T) {
	// 2 players: 4 table cards + 6 deals of 8. 4 players: 4 + 3 deals of 16.
	for _, seats := range []int{2, 4} {
		g := newTestGame(t, seats, 10)
		DealInitial(g)
		deals := 1
		for {
			for _, s := range g.Seats {
				s.Hand = s.Hand[:0]
			}
			if !Redeal(g) {
				break
			}
			deals++
		}
		wantDeals := (NumCards - InitialGroundCards - 1) / (seats * HandSize)
		if deals != wantDeals {
			t.Errorf("%d seats: dealt %d rounds, want %d", seats, deals, wantDeals)
		}
		if len(g.Deck) != 0 {
			t.Errorf("%d seats: %d cards left undealt", seats, len(g.Deck))
		}
	}
}
