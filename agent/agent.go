package agent

import (
	"fmt"

	"yahtzee/experiments/metrics"
	"yahtzee/game"

	"golang.org/x/exp/rand"
)

const (
	RandomKind   = "random"
	GreedyKind   = "greedy"
	SamplingKind = "sampling"
)

type Agent interface {
	// Act picks the next action for the observed state
	Act(obs game.Observation) game.Action
}

// New builds the agent described by config. Agents that sample draw from rng.
func New(config metrics.AgentConfig, rng *rand.Rand) (Agent, error) {
	switch config.Kind {
	case RandomKind:
		return NewRandomAgent(rng), nil
	case GreedyKind:
		return NewGreedyAgent(config.Threshold), nil
	case SamplingKind:
		if config.Temperature <= 0 {
			return nil, fmt.Errorf("sampling agent %d needs a positive temperature, got %v", config.ID, config.Temperature)
		}
		return NewSamplingAgent(rng, config.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

// preview scores the dice in every open category.
func preview(obs game.Observation) map[game.Category]int {
	scores := make(map[game.Category]int, game.NumCategories)
	for _, c := range obs.Sheet.Unused() {
		score, err := game.Score(c, obs.Dice)
		if err != nil {
			panic(err)
		}
		scores[c] = score
	}
	return scores
}
