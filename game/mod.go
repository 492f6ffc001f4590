package game

import "golang.org/x/exp/rand"

const (
	NumDice       = 5
	NumFaces      = 6
	NumCategories = 14
)

// Roller draws die faces. Intn returns a value in [0, n).
type Roller interface {
	Intn(n int) int
}

// NewRoller returns a seeded roller so episodes can be replayed.
func NewRoller(seed uint64) Roller {
	return rand.New(rand.NewSource(seed))
}

// Observation is the agent-visible view of a game state.
type Observation struct {
	Dice      Hand       `json:"dice"`
	Sheet     ScoreSheet `json:"score_sheet"`
	RollsLeft int        `json:"current_rolls"`
}

// LegalActions lists reroll while rolls remain, then every open category.
func (o Observation) LegalActions() []Action {
	actions := []Action{}
	if o.RollsLeft > 0 {
		actions = append(actions, RerollAction)
	}
	for _, c := range o.Sheet.Unused() {
		actions = append(actions, ScoreAction(c))
	}
	return actions
}
