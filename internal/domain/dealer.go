package domain

const (
	// HandSize is the number of cards dealt to each seat per deal.
	HandSize = 4
	// InitialGroundCards is the number of face-down cards opening the pile.
	InitialGroundCards = 3
)

// DealInitial lays out the opening table: three face-down cards and one
// face-up card onto the pile, then four cards to each seat round-robin
// starting at the dealer position. Face orientation is a presentation
// concern; all four ground cards live on the pile.
func DealInitial(g *Game) {
	for i := 0; i < InitialGroundCards+1; i++ {
		g.DrawToPile()
	}
	dealRound(g, g.DealerStart)
}

// Redeal hands out four fresh cards per seat, starting at the seat after
// the last capturer. It reports false when the deck is exhausted, which is
// the signal to finalize the game.
func Redeal(g *Game) bool {
	if len(g.Deck) == 0 {
		return false
	}
	dealRound(g, g.RedealStart())
	return true
}

// RedealStart is the seat that receives the first card of a redeal and
// opens the following round: the seat after the last capturer, or the
// dealer position while no capture has happened yet.
func (g *Game) RedealStart() int {
	if g.LastCaptureSeat >= 0 {
		return (g.LastCaptureSeat + 1) % len(g.Seats)
	}
	return g.DealerStart
}

// dealRound distributes HandSize cards to every seat, one card at a time
// around the table beginning at start.
func dealRound(g *Game, start int) {
	n := len(g.Seats)
	for round := 0; round < HandSize; round++ {
		for i := 0; i < n; i++ {
			if !g.DrawToHand((start + i) % n) {
				return
			}
		}
	}
}
