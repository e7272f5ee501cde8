package domain

// CollectionBonus is the extra score for holding strictly the most cards.
const CollectionBonus = 3

// ScoreReport is the final accounting for one seat.
type ScoreReport struct {
	Seat         int    `json:"seat"`
	UserID       string `json:"user_id"`
	Base         int    `json:"base"`
	BonusAwarded bool   `json:"bonus_awarded"`
	Collected    int    `json:"collected"`
	Total        int    `json:"total"`
}

// ComputeScore sums point values and pisti bonuses over a seat's collected
// pile.
func ComputeScore(g *Game, seat int) int {
	score := 0
	for _, id := range g.Seats[seat].Collected {
		c := g.Card(id)
		score += c.Point + c.Bonus
	}
	return score
}

// CollectionBonusSeat returns the seat holding strictly the most collected
// cards, or -1 when the maximum is shared and nobody gets the bonus.
func CollectionBonusSeat(g *Game) int {
	best, bestCount, tied := -1, -1, false
	for i, s := range g.Seats {
		switch {
		case len(s.Collected) > bestCount:
			best, bestCount, tied = i, len(s.Collected), false
		case len(s.Collected) == bestCount:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

// FinalScores builds the per-seat reports, including the collection bonus.
func FinalScores(g *Game) []ScoreReport {
	bonusSeat := CollectionBonusSeat(g)
	reports := make([]ScoreReport, len(g.Seats))
	for i, s := range g.Seats {
		base := ComputeScore(g, i)
		total := base
		if i == bonusSeat {
			total += CollectionBonus
		}
		reports[i] = ScoreReport{
			Seat:         i,
			UserID:       s.UserID,
			Base:         base,
			BonusAwarded: i == bonusSeat,
			Collected:    len(s.Collected),
			Total:        total,
		}
	}
	return reports
}

// WinnerSeat returns the seat with the highest total score; earlier seats
// win ties, matching the scoreboard ordering of the table UI.
func WinnerSeat(reports []ScoreReport) int {
	winner := 0
	for i, r := range reports {
		if r.Total > reports[winner].Total {
			winner = i
		}
	}
	return winner
}
