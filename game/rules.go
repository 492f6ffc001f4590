package game

type Rules interface {
	MaxRolls() int
	// Penalty is the reward for an action that cannot be applied.
	Penalty() int
	IsTerminal(sheet ScoreSheet, rollsLeft int) bool
}
