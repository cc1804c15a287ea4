package model

// Stack is a face card with two bounded modifier sequences and an
// optional match slot. Left cards add to the sum, right cards subtract.
type Stack struct {
	Face      Card   `json:"face"`
	Left      []Card `json:"left"`
	Right     []Card `json:"right"`
	MatchSlot *Card  `json:"match_slot"`
}

// NewStack creates an empty stack for the given face card
func NewStack(face Card) Stack {
	return Stack{
		Face:  face,
		Left:  []Card{},
		Right: []Card{},
	}
}

// Capacity returns the per-side card limit, determined by the face rank
func (s *Stack) Capacity() int {
	return s.Face.FaceCapacity()
}

// Sum returns the left total minus the right total
func (s *Stack) Sum() int {
	sum := 0
	for _, c := range s.Left {
		sum += c.Value()
	}
	for _, c := range s.Right {
		sum -= c.Value()
	}
	return sum
}

// IsLeftFull reports whether the left side is at capacity
func (s *Stack) IsLeftFull() bool {
	return len(s.Left) >= s.Capacity()
}

// IsRightFull reports whether the right side is at capacity
func (s *Stack) IsRightFull() bool {
	return len(s.Right) >= s.Capacity()
}

// IsFull reports whether both sides are at capacity
func (s *Stack) IsFull() bool {
	return s.IsLeftFull() && s.IsRightFull()
}

// TopLeft returns the most recently played left card, the only left
// card visible for adjacency checks
func (s *Stack) TopLeft() (Card, bool) {
	if len(s.Left) == 0 {
		return Card{}, false
	}
	return s.Left[len(s.Left)-1], true
}

// TopRight returns the most recently played right card
func (s *Stack) TopRight() (Card, bool) {
	if len(s.Right) == 0 {
		return Card{}, false
	}
	return s.Right[len(s.Right)-1], true
}

// CardCount returns the total number of cards on the stack, face
// card included
func (s *Stack) CardCount() int {
	count := 1 + len(s.Left) + len(s.Right)
	if s.MatchSlot != nil {
		count++
	}
	return count
}

// Clone returns a deep copy. Plays are applied copy-on-write so a
// prior configuration is never mutated in place.
func (s *Stack) Clone() Stack {
	clone := Stack{
		Face:  s.Face,
		Left:  make([]Card, len(s.Left)),
		Right: make([]Card, len(s.Right)),
	}
	copy(clone.Left, s.Left)
	copy(clone.Right, s.Right)
	if s.MatchSlot != nil {
		match := *s.MatchSlot
		clone.MatchSlot = &match
	}
	return clone
}
