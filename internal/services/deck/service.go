package deck

import (
	"github.com/Cireo/sixen/internal/dependencies/random"
	"github.com/Cireo/sixen/internal/model"
)

// Service builds and shuffles the two decks. Randomness is injected so
// deck orderings are reproducible in tests.
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// NewNumberDeck returns a shuffled deck of the 40 number cards (A-10
// in each suit)
func (s *Service) NewNumberDeck() model.Deck {
	deck := make(model.Deck, 0, len(model.Suits)*len(model.NumberRanks))
	for _, suit := range model.Suits {
		for _, rank := range model.NumberRanks {
			deck = append(deck, model.NewCard(rank, suit))
		}
	}
	s.shuffle(deck)
	return deck
}

// NewFaceDeck returns a shuffled deck of the 12 face cards (J, Q, K in
// each suit)
func (s *Service) NewFaceDeck() model.Deck {
	deck := make(model.Deck, 0, len(model.Suits)*len(model.FaceRanks))
	for _, suit := range model.Suits {
		for _, rank := range model.FaceRanks {
			deck = append(deck, model.NewCard(rank, suit))
		}
	}
	s.shuffle(deck)
	return deck
}

func (s *Service) shuffle(deck model.Deck) {
	s.random.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
