package bot

import (
	"math/rand"

	"pisti/internal/bot/brain"
	"pisti/internal/bot/internal"
	"pisti/internal/domain"
)

// HardBrain plays the full card-counting game: it keeps paired ranks back
// for a later pisti, leads with cheap ranks its memory has never seen,
// only spends a Jack when the pile is actually worth points, and dumps the
// cards whose partners it remembers being gone.
type HardBrain struct{}

func (b *HardBrain) ChooseCard(view View, memory *brain.RankMemory, _ *rand.Rand) (domain.CardID, error) {
	if len(view.Hand) == 0 {
		return 0, ErrEmptyHand
	}

	if view.LastPlayed == nil {
		// Holding two of a rank sets up a pisti: lead with one of them.
		if i, ok := internal.FirstDuplicatedRank(view.Hand); ok {
			return view.HandIDs[i], nil
		}
		// Lead the cheapest rank nobody has shown yet, keeping Jacks back.
		for _, i := range internal.OrderByPoint(view.Hand) {
			c := view.Hand[i]
			if !memory.Seen(c.Rank) && c.Rank != domain.RankJack {
				return view.HandIDs[i], nil
			}
		}
		return view.HandIDs[internal.OrderByPoint(view.Hand)[0]], nil
	}

	// Pisti chance: the pile holds exactly one card.
	if len(view.Pile) == 1 {
		if i, ok := internal.FindRank(view.Hand, view.LastPlayed.Rank); ok {
			return view.HandIDs[i], nil
		}
	}

	// A Jack is only worth spending on a pile that carries points.
	if i, ok := internal.FindRank(view.Hand, domain.RankJack); ok && internal.HasPoints(view.Pile) {
		return view.HandIDs[i], nil
	}

	if i, ok := internal.FindRank(view.Hand, view.LastPlayed.Rank); ok {
		return view.HandIDs[i], nil
	}

	// Discard the cheapest card; on equal points prefer the rank
	// remembered least often, since its partners may still be live.
	ordered := internal.OrderByPointThenSeen(view.Hand, memory.Count)
	return view.HandIDs[ordered[0]], nil
}
