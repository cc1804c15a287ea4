package model

// Deck is an ordered sequence of cards consumed from one end.
// The last element is the top of the deck.
type Deck []Card

// Draw removes and returns the top card. The second return value is
// false when the deck is empty; an empty deck is a normal terminal
// signal, not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	card := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card, true
}

// Len returns the number of cards remaining
func (d Deck) Len() int {
	return len(d)
}

// IsEmpty reports whether the deck has no cards left
func (d Deck) IsEmpty() bool {
	return len(d) == 0
}
