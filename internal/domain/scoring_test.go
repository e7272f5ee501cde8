package domain

import (
	"testing"
)

// stage moves specific cards onto the pile so a capture can pull them into
// a collected pile with the right ownership bookkeeping.
func stageOnPile(g *Game, ids ...CardID) {
	for _, id := range ids {
		for i, d := range g.Deck {
			if d == id {
				g.Deck = append(g.Deck[:i], g.Deck[i+1:]...)
				break
			}
		}
		g.Pile = append(g.Pile, id)
	}
}

func TestComputeScoreRoundTrip(t *testing.T) {
	g := newTestGame(t, 2, 11)

	// A jack-jack pisti: both jacks carry point 1 and bonus 5.
	stageOnPile(g, findCard(g, Hearts, RankJack), findCard(g, Diamonds, RankJack))
	g.AwardPistiBonus()
	g.CapturePile(0)

	// A plain ace capture.
	stageOnPile(g, findCard(g, Spades, RankAce))
	g.CapturePile(0)

	if got := ComputeScore(g, 0); got != 13 {
		t.Errorf("ComputeScore = %d, want 13 (1+5 + 1+5 + 1)", got)
	}
	if got := ComputeScore(g, 1); got != 0 {
		t.Errorf("empty collected pile scored %d", got)
	}
}

func TestCollectionBonusSeat(t *testing.T) {
	tests := []struct {
		name     string
		counts   []int
		expected int
	}{
		{name: "Strict majority", counts: []int{10, 4}, expected: 0},
		{name: "Strict majority other seat", counts: []int{4, 10}, expected: 1},
		{name: "Tie awards nobody", counts: []int{7, 7}, expected: -1},
		{name: "Four seats strict", counts: []int{3, 9, 2, 1}, expected: 1},
		{name: "Four seats tied max", counts: []int{9, 9, 2, 1}, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, len(tt.counts), 12)
			for seat, n := range tt.counts {
				for i := 0; i < n; i++ {
					stageOnPile(g, g.Deck[0])
					g.CapturePile(seat)
				}
			}
			if got := CollectionBonusSeat(g); got != tt.expected {
				t.Errorf("CollectionBonusSeat = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestFinalScoresIncludeBonus(t *testing.T) {
	g := newTestGame(t, 2, 13)

	stageOnPile(g, findCard(g, Spades, RankAce), g.Deck[0], g.Deck[1])
	g.CapturePile(0)

	reports := FinalScores(g)
	if !reports[0].BonusAwarded {
		t.Error("seat 0 holds strictly the most cards but got no bonus")
	}
	if reports[0].Total != reports[0].Base+CollectionBonus {
		t.Errorf("total = %d, want base %d + %d", reports[0].Total, reports[0].Base, CollectionBonus)
	}
	if reports[1].BonusAwarded {
		t.Error("seat 1 should not receive the collection bonus")
	}
	if got := WinnerSeat(reports); got != 0 {
		t.Errorf("WinnerSeat = %d, want 0", got)
	}
}
