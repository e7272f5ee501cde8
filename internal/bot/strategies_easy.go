package bot

import (
	"math/rand"

	"pisti/internal/bot/brain"
	"pisti/internal/bot/internal"
	"pisti/internal/domain"
)

// EasyBrain plays almost randomly: it takes an obvious rank match when one
// exists and otherwise throws any card. It never consults memory.
type EasyBrain struct{}

func (b *EasyBrain) ChooseCard(view View, _ *brain.RankMemory, rng *rand.Rand) (domain.CardID, error) {
	if len(view.Hand) == 0 {
		return 0, ErrEmptyHand
	}

	if view.LastPlayed == nil {
		return view.HandIDs[rng.Intn(len(view.Hand))], nil
	}

	if i, ok := internal.FindRank(view.Hand, view.LastPlayed.Rank); ok {
		return view.HandIDs[i], nil
	}

	return view.HandIDs[rng.Intn(len(view.Hand))], nil
}
