package game

import "fmt"

// Action is an environment action: 0 rerolls every die, 1..NumCategories
// scores category Action-1.
type Action int

const (
	RerollAction Action = 0
	NumActions          = NumCategories + 1
)

func ScoreAction(c Category) Action {
	return Action(c) + 1
}

// Category returns the category a scoring action targets. ok is false for the
// reroll action.
func (a Action) Category() (c Category, ok bool) {
	if a == RerollAction {
		return 0, false
	}
	return Category(a - 1), true
}

func (a Action) String() string {
	if c, ok := a.Category(); ok {
		return fmt.Sprintf("score(%v)", c)
	}
	return "reroll"
}
