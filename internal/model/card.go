package model

import "fmt"

// Rank is a card rank: A, 2-10, J, Q, K
type Rank string

const (
	RankAce   Rank = "A"
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

// Suit is a card suit
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Suits lists all four suits in canonical order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// NumberRanks lists the ranks that make up the number deck
var NumberRanks = []Rank{RankAce, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10}

// FaceRanks lists the ranks that make up the face deck
var FaceRanks = []Rank{RankJack, RankQueen, RankKing}

var cardValues = map[Rank]int{
	RankAce: 1, Rank2: 2, Rank3: 3, Rank4: 4, Rank5: 5,
	Rank6: 6, Rank7: 7, Rank8: 8, Rank9: 9, Rank10: 10,
}

// Capacity per side for each face rank
var faceCapacities = map[Rank]int{
	RankJack:  1,
	RankQueen: 2,
	RankKing:  3,
}

// Card is an immutable rank+suit pair. Duplicates across suits are
// distinct cards; there is no identity beyond rank and suit.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the numeric value of a number card (A=1 .. 10=10).
// Face cards have no numeric value and return 0.
func (c Card) Value() int {
	return cardValues[c.Rank]
}

// FaceCapacity returns the per-side modifier capacity of a face card
// (J=1, Q=2, K=3). Number cards return 0.
func (c Card) FaceCapacity() int {
	return faceCapacities[c.Rank]
}

// IsFace reports whether the card is a jack, queen, or king
func (c Card) IsFace() bool {
	return c.FaceCapacity() > 0
}

var suitAssetNames = map[Suit]string{
	SuitHearts:   "heart",
	SuitDiamonds: "diamond",
	SuitClubs:    "club",
	SuitSpades:   "spade",
}

var rankAssetNames = map[Rank]string{
	RankAce:   "1",
	RankJack:  "jack",
	RankQueen: "queen",
	RankKing:  "king",
}

// AssetID returns the visual asset identifier for the card, in the
// {suit-word}_{rank-word} format the rendering layer expects
// (e.g. "heart_1", "spade_jack", "club_7").
func (c Card) AssetID() string {
	rank := rankAssetNames[c.Rank]
	if rank == "" {
		rank = string(c.Rank)
	}
	return fmt.Sprintf("%s_%s", suitAssetNames[c.Suit], rank)
}

// String returns a short human-readable form like "7 of spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
