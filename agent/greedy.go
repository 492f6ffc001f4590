package agent

import "yahtzee/game"

type greedyAgent struct {
	threshold int
}

// NewGreedyAgent returns an agent that takes the best open category once it
// is worth at least threshold points. Below that it rerolls while doing so
// leaves a roll in hand, since spending the last roll ends the game.
func NewGreedyAgent(threshold int) Agent {
	return greedyAgent{threshold: threshold}
}

func (a greedyAgent) Act(obs game.Observation) game.Action {
	best, score, ok := findMax(preview(obs))
	if !ok {
		return game.RerollAction
	}
	if score < a.threshold && obs.RollsLeft > 1 {
		return game.RerollAction
	}
	return game.ScoreAction(best)
}

// findMax returns the highest scoring category, preferring the lower index
// on ties.
func findMax(scores map[game.Category]int) (game.Category, int, bool) {
	var maxCategory game.Category
	maxScore := -1
	for _, c := range game.Categories() {
		score, ok := scores[c]
		if ok && score > maxScore {
			maxScore = score
			maxCategory = c
		}
	}
	return maxCategory, maxScore, maxScore >= 0
}
