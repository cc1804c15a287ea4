package model

// Side identifies where a card is placed on a stack
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideMatch Side = "match"
)

// Sides lists placement kinds in evaluation order. The ordering drives
// default selection in callers; it does not affect rule correctness.
var Sides = []Side{SideLeft, SideRight, SideMatch}

// Valid reports whether the side is one of the three placement kinds
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight || s == SideMatch
}

// Placement is one admissible (stack, side) pair for a card
type Placement struct {
	StackIndex int  `json:"stack_index"`
	Side       Side `json:"side"`
}
