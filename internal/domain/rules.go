package domain

// CaptureKind classifies the outcome of a card landing on the table pile.
type CaptureKind int

const (
	// NoCapture leaves the pile in place and passes the turn.
	NoCapture CaptureKind = iota
	// MatchCapture takes the whole pile by rank match or by Jack.
	MatchCapture
	// PistiCapture is a pair capture on a one-card pile and awards the bonus.
	PistiCapture
)

// ResolvePlay decides what happens after a card lands on the pile.
// pileBefore is the pile depth before the play and topRank the rank of the
// card that was on top (ignored when pileBefore is zero).
//
// A pisti requires the pile to have held exactly one card; deeper piles use
// ordinary match semantics, including the Jack override, without the bonus.
func ResolvePlay(pileBefore, topRank, playedRank int) CaptureKind {
	if pileBefore == 0 {
		return NoCapture
	}
	if pileBefore == 1 && topRank == playedRank {
		return PistiCapture
	}
	if topRank == playedRank || playedRank == RankJack {
		return MatchCapture
	}
	return NoCapture
}
