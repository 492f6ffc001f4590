package engine

import (
	"errors"

	"yahtzee/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is one applied action and what it produced.
type Update struct {
	Action      game.Action
	Observation game.Observation
	Reward      int
	Done        bool
}
