package bot

import (
	"errors"
	"math/rand"
	"testing"

	"pisti/internal/bot/brain"
	"pisti/internal/domain"
)

func card(rank, point int) domain.Card {
	return domain.Card{Suit: domain.Spades, Rank: rank, Point: point}
}

func viewOf(hand []domain.Card, pile []domain.Card) View {
	ids := make([]domain.CardID, len(hand))
	for i := range ids {
		ids[i] = domain.CardID(i)
	}
	v := View{HandIDs: ids, Hand: hand, Pile: pile}
	if len(pile) > 0 {
		top := pile[len(pile)-1]
		v.LastPlayed = &top
	}
	return v
}

func seededMemory(ranks ...int) *brain.RankMemory {
	m := brain.NewRankMemory()
	rng := rand.New(rand.NewSource(1))
	for _, r := range ranks {
		m.Observe(r, 100, rng)
	}
	return m
}

func TestBrainsRejectEmptyHand(t *testing.T) {
	for _, level := range []Level{LevelEasy, LevelMedium, LevelHard} {
		t.Run(level.String(), func(t *testing.T) {
			b, err := NewBrain(level)
			if err != nil {
				t.Fatalf("NewBrain(%v): %v", level, err)
			}
			_, err = b.ChooseCard(viewOf(nil, nil), brain.NewRankMemory(), rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrEmptyHand) {
				t.Errorf("got %v, want ErrEmptyHand", err)
			}
		})
	}
}

func TestEasyBrainTakesRankMatch(t *testing.T) {
	hand := []domain.Card{card(3, 0), card(7, 0), card(9, 0)}
	pile := []domain.Card{card(7, 0)}
	got, err := (&EasyBrain{}).ChooseCard(viewOf(hand, pile), brain.NewRankMemory(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got card %d, want the matching 7 at index 1", got)
	}
}

func TestEasyBrainRandomWithoutMatch(t *testing.T) {
	hand := []domain.Card{card(3, 0), card(8, 0)}
	pile := []domain.Card{card(5, 0)}
	got, err := (&EasyBrain{}).ChooseCard(viewOf(hand, pile), brain.NewRankMemory(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if int(got) >= len(hand) {
		t.Errorf("chose id %d outside the hand", got)
	}
}

func TestMediumBrainLead(t *testing.T) {
	tests := []struct {
		name   string
		hand   []domain.Card
		memory *brain.RankMemory
		want   domain.CardID
	}{
		{
			name:   "leads a remembered rank",
			hand:   []domain.Card{card(4, 0), card(9, 0)},
			memory: seededMemory(9),
			want:   1,
		},
		{
			name:   "keeps the jack back",
			hand:   []domain.Card{card(domain.RankJack, 1), card(6, 0)},
			memory: brain.NewRankMemory(),
			want:   1,
		},
		{
			name:   "all jacks forces a jack",
			hand:   []domain.Card{card(domain.RankJack, 1)},
			memory: brain.NewRankMemory(),
			want:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&MediumBrain{}).ChooseCard(viewOf(tt.hand, nil), tt.memory, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMediumBrainResponse(t *testing.T) {
	tests := []struct {
		name string
		hand []domain.Card
		pile []domain.Card
		want domain.CardID
	}{
		{
			name: "single pile card takes the pisti match over the jack",
			hand: []domain.Card{card(domain.RankJack, 1), card(8, 0)},
			pile: []domain.Card{card(8, 0)},
			want: 1,
		},
		{
			name: "deeper pile spends the jack first",
			hand: []domain.Card{card(domain.RankJack, 1), card(8, 0)},
			pile: []domain.Card{card(2, 0), card(8, 0)},
			want: 0,
		},
		{
			name: "no jack takes the plain match",
			hand: []domain.Card{card(3, 0), card(8, 0)},
			pile: []domain.Card{card(2, 0), card(8, 0)},
			want: 1,
		},
		{
			name: "nothing matches sheds the cheapest card",
			hand: []domain.Card{card(domain.RankAce, 1), card(5, 0)},
			pile: []domain.Card{card(2, 0), card(9, 0)},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&MediumBrain{}).ChooseCard(viewOf(tt.hand, tt.pile), brain.NewRankMemory(), nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHardBrainLead(t *testing.T) {
	tests := []struct {
		name   string
		hand   []domain.Card
		memory *brain.RankMemory
		want   domain.CardID
	}{
		{
			name:   "leads one of a held pair",
			hand:   []domain.Card{card(4, 0), card(9, 0), card(9, 0)},
			memory: brain.NewRankMemory(),
			want:   1,
		},
		{
			name:   "leads the cheapest unseen non-jack",
			hand:   []domain.Card{card(domain.RankAce, 1), card(domain.RankJack, 1), card(6, 0)},
			memory: brain.NewRankMemory(),
			want:   2,
		},
		{
			name:   "everything seen sheds the cheapest card",
			hand:   []domain.Card{card(domain.RankAce, 1), card(6, 0)},
			memory: seededMemory(domain.RankAce, 6),
			want:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&HardBrain{}).ChooseCard(viewOf(tt.hand, nil), tt.memory, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHardBrainResponse(t *testing.T) {
	tests := []struct {
		name   string
		hand   []domain.Card
		pile   []domain.Card
		memory *brain.RankMemory
		want   domain.CardID
	}{
		{
			name:   "single pile card attempts the pisti",
			hand:   []domain.Card{card(domain.RankJack, 1), card(8, 0)},
			pile:   []domain.Card{card(8, 0)},
			memory: brain.NewRankMemory(),
			want:   1,
		},
		{
			name:   "jack only when the pile carries points",
			hand:   []domain.Card{card(domain.RankJack, 1), card(4, 0)},
			pile:   []domain.Card{card(domain.RankAce, 1), card(9, 0)},
			memory: brain.NewRankMemory(),
			want:   0,
		},
		{
			name:   "worthless pile keeps the jack and sheds",
			hand:   []domain.Card{card(domain.RankJack, 1), card(4, 0)},
			pile:   []domain.Card{card(3, 0), card(9, 0)},
			memory: brain.NewRankMemory(),
			want:   1,
		},
		{
			name:   "point tie sheds the least remembered rank",
			hand:   []domain.Card{card(4, 0), card(6, 0)},
			pile:   []domain.Card{card(3, 0), card(9, 0)},
			memory: seededMemory(4, 4, 6),
			want:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&HardBrain{}).ChooseCard(viewOf(tt.hand, tt.pile), tt.memory, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
