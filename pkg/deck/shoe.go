package deck

import (
	"github.com/sirupsen/logrus"
	"terminal-blackjack/internal/rng"
)

// Shoe is one or more standard decks shuffled together
//
// When the shoe runs out it is rebuilt and reshuffled before the next card is drawn.
// Callers are never told about the reshuffle, so counting cards across rounds is not possible.
type Shoe struct {
	Cards []*Card `json:"-"`

	deckCount int
	gen       rng.Generator
}

// NewShoe returns a shuffled shoe made of deckCount decks
func NewShoe(deckCount int, gen rng.Generator) *Shoe {
	if deckCount < 1 {
		panic("deck count must be >= 1")
	}

	if gen == nil {
		gen = rng.Crypto{}
	}

	s := &Shoe{
		deckCount: deckCount,
		gen:       gen,
	}

	s.Shuffle()
	return s
}

func (s *Shoe) buildShoe() {
	cards := make([]*Card, 0, s.Size())
	for i := 0; i < s.deckCount; i++ {
		for _, suit := range Suits {
			for rank := 2; rank <= Ace; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	s.Cards = cards
}

// Shuffle rebuilds the full shoe and shuffles it
func (s *Shoe) Shuffle() {
	s.buildShoe()
	rng.Shuffle(s.gen, len(s.Cards), func(i, j int) {
		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	})
}

// Draw will draw the next card
// An empty shoe is rebuilt and reshuffled first, so Draw always returns a card
func (s *Shoe) Draw() *Card {
	if len(s.Cards) == 0 {
		logrus.WithField("decks", s.deckCount).Debug("shoe exhausted, reshuffling")
		s.Shuffle()
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// DeckCount returns how many decks make up the shoe
func (s *Shoe) DeckCount() int {
	return s.deckCount
}

// Size returns the number of cards in a full shoe
func (s *Shoe) Size() int {
	return 52 * s.deckCount
}
