package agent

import (
	"math"

	"yahtzee/game"

	"golang.org/x/exp/rand"
)

type samplingAgent struct {
	rng         *rand.Rand
	temperature float64
}

// NewSamplingAgent returns an agent that samples actions in proportion to the
// points they earn now. Lower temperatures approach the greedy choice; higher
// temperatures approach uniform play. Rerolling is weighted like a category
// worth nothing.
func NewSamplingAgent(rng *rand.Rand, temperature float64) Agent {
	return samplingAgent{rng: rng, temperature: temperature}
}

func (a samplingAgent) Act(obs game.Observation) game.Action {
	actions := obs.LegalActions()
	if len(actions) == 0 {
		return game.RerollAction
	}

	scores := preview(obs)
	weights := make([]float64, len(actions))
	for i, action := range actions {
		if c, ok := action.Category(); ok {
			weights[i] = float64(scores[c] + 1) // Keep zero scores reachable
		} else {
			weights[i] = 1
		}
	}

	policy := adjustTemperature(weights, a.temperature)
	return actions[sample(policy, a.rng.Float64())]
}

func adjustTemperature(weights []float64, temperature float64) []float64 {
	// Compute temperature-adjusted action probabilities
	exponent := 1.0 / temperature
	maxWeight := 0.0
	for _, weight := range weights {
		maxWeight = math.Max(maxWeight, weight)
	}
	sum := 0.0
	adjusted := make([]float64, len(weights))
	for i, weight := range weights {
		// Scale by the max so small temperatures cannot overflow
		prob := math.Pow(weight/maxWeight, exponent)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

// sample returns the index whose cumulative probability first exceeds sampled.
func sample(policy []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
