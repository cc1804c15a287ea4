package rules

import (
	"github.com/Cireo/sixen/internal/model"
)

// Service is the legal-move engine and collection-condition detector.
// All methods are pure queries over stacks and cards; the game
// controller owns mutation.
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// CanPlayLeft reports whether placing the card on the left side is
// legal: the side must not be full and the resulting sum must stay
// non-negative.
func (s *Service) CanPlayLeft(stack *model.Stack, card model.Card) bool {
	if stack.IsLeftFull() {
		return false
	}
	return stack.Sum()+card.Value() >= 0
}

// CanPlayRight reports whether placing the card on the right side is
// legal: the side must not be full and the resulting sum must stay
// non-negative.
func (s *Service) CanPlayRight(stack *model.Stack, card model.Card) bool {
	if stack.IsRightFull() {
		return false
	}
	return stack.Sum()-card.Value() >= 0
}

// CanPlayMatch reports whether a match play is legal: both sides must
// be at capacity and the card's value must equal the current sum.
func (s *Service) CanPlayMatch(stack *model.Stack, card model.Card) bool {
	if !stack.IsFull() {
		return false
	}
	return card.Value() == stack.Sum()
}

// CanPlay reports whether the given placement kind is legal
func (s *Service) CanPlay(stack *model.Stack, card model.Card, side model.Side) bool {
	switch side {
	case model.SideLeft:
		return s.CanPlayLeft(stack, card)
	case model.SideRight:
		return s.CanPlayRight(stack, card)
	case model.SideMatch:
		return s.CanPlayMatch(stack, card)
	}
	return false
}

// LegalPlays enumerates every admissible placement for the card, in
// stack order and then left/right/match order. An empty result means
// the card has no legal play.
func (s *Service) LegalPlays(stacks []model.Stack, card model.Card) []model.Placement {
	plays := []model.Placement{}
	for i := range stacks {
		if s.CanPlayLeft(&stacks[i], card) {
			plays = append(plays, model.Placement{StackIndex: i, Side: model.SideLeft})
		}
		if s.CanPlayRight(&stacks[i], card) {
			plays = append(plays, model.Placement{StackIndex: i, Side: model.SideRight})
		}
		if s.CanPlayMatch(&stacks[i], card) {
			plays = append(plays, model.Placement{StackIndex: i, Side: model.SideMatch})
		}
	}
	return plays
}

// HasLegalPlay reports whether any placement exists for the card
func (s *Service) HasLegalPlay(stacks []model.Stack, card model.Card) bool {
	for i := range stacks {
		if s.CanPlayLeft(&stacks[i], card) || s.CanPlayRight(&stacks[i], card) || s.CanPlayMatch(&stacks[i], card) {
			return true
		}
	}
	return false
}

// DetectConditions returns every collection condition the play just
// made true, against the post-placement stack. A single play may
// trigger several; callers pick one via SelectCondition.
func (s *Service) DetectConditions(stack *model.Stack, played model.Card, side model.Side) []model.Condition {
	conditions := []model.Condition{}
	sum := stack.Sum()

	if played.Value() == 7 && side != model.SideMatch && s.hasAdjacentSix(stack, side) {
		conditions = append(conditions, model.ConditionSixSeven)
	}

	if sum == 6 {
		conditions = append(conditions, model.ConditionSixSix)
	}

	if sum == 7 {
		conditions = append(conditions, model.ConditionSevenSeven)
	}

	// An empty stack trivially sums to zero, so zero only counts once a
	// side has filled up
	if sum == 0 && (stack.IsLeftFull() || stack.IsRightFull()) {
		conditions = append(conditions, model.ConditionZero)
	}

	if side == model.SideMatch {
		conditions = append(conditions, model.ConditionMatch)
	}

	return conditions
}

// hasAdjacentSix checks the two positions a 6 is visible from after a
// 7 lands on a side: directly underneath on the same side, then the
// top of the opposite side. Same-side wins when both hold; the
// outcomes are identical, the order just keeps detection deterministic.
func (s *Service) hasAdjacentSix(stack *model.Stack, side model.Side) bool {
	var same, other []model.Card
	switch side {
	case model.SideLeft:
		same, other = stack.Left, stack.Right
	case model.SideRight:
		same, other = stack.Right, stack.Left
	default:
		return false
	}

	// same[len-1] is the just-played 7; the card underneath is second
	// from the top
	if len(same) > 1 && same[len(same)-2].Value() == 6 {
		return true
	}
	if len(other) > 0 && other[len(other)-1].Value() == 6 {
		return true
	}
	return false
}

// SelectCondition picks the single condition the collection is
// credited to: six-seven beats everything, otherwise the first
// condition in detection order.
func (s *Service) SelectCondition(conditions []model.Condition) (model.Condition, bool) {
	if len(conditions) == 0 {
		return "", false
	}
	for _, c := range conditions {
		if c == model.ConditionSixSeven {
			return c, true
		}
	}
	return conditions[0], true
}

// IsDeadlocked reports whether no card value 1-10 could ever be played
// on any stack: every stack is full with a sum above 10, so no match
// is possible either. Only meaningful once the face deck is empty.
func (s *Service) IsDeadlocked(stacks []model.Stack) bool {
	if len(stacks) == 0 {
		return false
	}
	for i := range stacks {
		if !stacks[i].IsFull() || stacks[i].Sum() <= 10 {
			return false
		}
	}
	return true
}
