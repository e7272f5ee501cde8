package brain

import (
	"math/rand"

	"pisti/internal/domain"
)

// RankMemory stores the ranks a bot remembers seeing on the table.
// Recall is imperfect: every observation is a Bernoulli trial gated by the
// bot's memory capability, so weaker bots hold a sparser picture of the
// game. Checks are by rank, never by card identity.
type RankMemory struct {
	counts [domain.RankKing + 1]int
}

// NewRankMemory returns an empty memory.
func NewRankMemory() *RankMemory {
	return &RankMemory{}
}

// Observe rolls against capability (a 0..100 percent chance) and, on
// success, records one more sighting of the rank. It reports whether the
// card was remembered.
func (m *RankMemory) Observe(rank, capability int, rng *rand.Rand) bool {
	if rank < domain.RankAce || rank > domain.RankKing {
		return false
	}
	if rng.Intn(100) >= capability {
		return false
	}
	m.counts[rank]++
	return true
}

// Seen reports whether the rank was remembered at least once.
func (m *RankMemory) Seen(rank int) bool {
	return m.Count(rank) > 0
}

// Count returns how many sightings of the rank were remembered.
func (m *RankMemory) Count(rank int) int {
	if rank < domain.RankAce || rank > domain.RankKing {
		return 0
	}
	return m.counts[rank]
}

// Reset clears the memory for a new game. Redeals within a game keep it.
func (m *RankMemory) Reset() {
	for i := range m.counts {
		m.counts[i] = 0
	}
}
