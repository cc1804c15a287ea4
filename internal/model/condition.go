package model

// Condition is a collection condition detected after a play. The set is
// closed; presentation text for announcements belongs to the UI layer.
type Condition string

const (
	// ConditionSixSeven fires when a 7 is played onto a side with a
	// visible 6 adjacent to it. Takes priority over all others.
	ConditionSixSeven Condition = "six-seven"
	// ConditionSixSix fires when the stack sum becomes 6
	ConditionSixSix Condition = "six-six"
	// ConditionSevenSeven fires when the stack sum becomes 7
	ConditionSevenSeven Condition = "seven-seven"
	// ConditionZero fires when the sum becomes 0 with a full side
	ConditionZero Condition = "zero"
	// ConditionMatch fires when a card is placed in the match slot
	ConditionMatch Condition = "match"
)

// Valid reports whether the condition is one of the closed set
func (c Condition) Valid() bool {
	switch c {
	case ConditionSixSeven, ConditionSixSix, ConditionSevenSeven, ConditionZero, ConditionMatch:
		return true
	}
	return false
}
