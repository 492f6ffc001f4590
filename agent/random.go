package agent

import (
	"yahtzee/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly among the actions that
// avoid the penalty.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) Act(obs game.Observation) game.Action {
	actions := obs.LegalActions()
	if len(actions) == 0 { // Nothing left to do, any action is penalized
		return game.RerollAction
	}
	return actions[a.rng.Intn(len(actions))]
}
