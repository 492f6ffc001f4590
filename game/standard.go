package game

type StandardRules struct {
	Rolls         int
	InvalidReward int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Rolls:         3,
		InvalidReward: -1,
	}
}

func (sr *StandardRules) MaxRolls() int {
	return sr.Rolls
}

func (sr *StandardRules) Penalty() int {
	return sr.InvalidReward
}

// IsTerminal ends the game once every category is scored or the roll budget
// runs out, whichever comes first.
func (sr *StandardRules) IsTerminal(sheet ScoreSheet, rollsLeft int) bool {
	return sheet.Full() || rollsLeft == 0
}
