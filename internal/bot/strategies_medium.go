package bot

import (
	"math/rand"

	"pisti/internal/bot/brain"
	"pisti/internal/bot/internal"
	"pisti/internal/domain"
)

// MediumBrain tries to collect: it leads with ranks it remembers seeing,
// attempts the pisti when the pile holds a single card, and otherwise
// spends a Jack before falling back to its cheapest card. It does not
// weigh what the pile is worth.
type MediumBrain struct{}

func (b *MediumBrain) ChooseCard(view View, memory *brain.RankMemory, _ *rand.Rand) (domain.CardID, error) {
	if len(view.Hand) == 0 {
		return 0, ErrEmptyHand
	}

	if view.LastPlayed == nil {
		// Lead with a rank that has been seen before: a matching partner
		// is more likely already out of play.
		for i, c := range view.Hand {
			if memory.Seen(c.Rank) {
				return view.HandIDs[i], nil
			}
		}
		// Keep Jacks for capturing.
		if i, ok := internal.FindNonJack(view.Hand); ok {
			return view.HandIDs[i], nil
		}
		return view.HandIDs[0], nil
	}

	// Pisti chance: the pile holds exactly one card.
	if len(view.Pile) == 1 {
		if i, ok := internal.FindRank(view.Hand, view.LastPlayed.Rank); ok {
			return view.HandIDs[i], nil
		}
	}

	if i, ok := internal.FindRank(view.Hand, domain.RankJack); ok {
		return view.HandIDs[i], nil
	}

	if i, ok := internal.FindRank(view.Hand, view.LastPlayed.Rank); ok {
		return view.HandIDs[i], nil
	}

	return view.HandIDs[internal.OrderByPoint(view.Hand)[0]], nil
}
