package domain

// Suit identifies one of the four French suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the short suit label used in logs and payloads.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank values with game meaning.
const (
	RankAce  = 1
	RankJack = 11
	RankKing = 13
)

// PistiBonus is added to each of the two paired cards on a pisti.
const PistiBonus = 5

// CardID addresses a card in the game's arena. Containers hold IDs, never
// card values, so a card can only ever live in one container.
type CardID uint8

// NumCards is the size of a full deck.
const NumCards = 52

// Card is a single playing card. Point is fixed at arena construction;
// Bonus only ever grows, by PistiBonus per pisti the card was part of.
type Card struct {
	Suit  Suit `json:"suit"`
	Rank  int  `json:"rank"` // 1..13, Ace low, Jack = 11
	Point int  `json:"point"`
	Bonus int  `json:"bonus"`
}

// cardPoint returns the fixed point value for a (suit, rank) pair:
// every Ace and Jack is worth 1, the two of clubs 2, the ten of diamonds 3.
func cardPoint(suit Suit, rank int) int {
	switch {
	case rank == RankAce:
		return 1
	case rank == 2 && suit == Clubs:
		return 2
	case rank == 10 && suit == Diamonds:
		return 3
	case rank == RankJack:
		return 1
	default:
		return 0
	}
}
