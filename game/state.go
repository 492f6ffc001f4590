package game

import (
	"fmt"

	"yahtzee/utils"
)

// GameState is a single-player Yahtzee turn: the dice, the categories already
// scored and the rerolls remaining. It is not safe for concurrent use; each
// episode owns its own GameState. Call Reset before the first Step.
type GameState struct {
	Dice      Hand       // Current faces
	Sheet     ScoreSheet // Categories scored so far
	RollsLeft int        // Rerolls remaining
	Rules     Rules      // The set of game rules to apply
	roller    Roller
}

// NewGameState returns an unstarted game drawing dice from roller.
func NewGameState(rules Rules, roller Roller) *GameState {
	if rules == nil {
		rules = NewStandardRules()
	}
	return &GameState{
		Rules:  rules,
		roller: roller,
	}
}

// Copy returns an independent copy of the state. The copy shares the roller.
func (gs GameState) Copy() *GameState {
	return &gs
}

// Reset starts a new game: fresh dice, a full roll budget and an empty sheet.
func (gs *GameState) Reset() Observation {
	gs.Dice = rollDice(gs.roller)
	gs.Sheet = ScoreSheet{}
	gs.RollsLeft = gs.Rules.MaxRolls()
	return gs.Observation()
}

func (gs *GameState) Observation() Observation {
	return Observation{
		Dice:      gs.Dice,
		Sheet:     gs.Sheet,
		RollsLeft: gs.RollsLeft,
	}
}

// Reroll redraws every die. With no rolls left nothing changes and the
// penalty is returned.
func (gs *GameState) Reroll() int {
	return gs.RerollKeeping([NumDice]bool{})
}

// RerollKeeping redraws the dice whose keep flag is false. It spends one roll
// like Reroll, even when every die is kept.
func (gs *GameState) RerollKeeping(keep [NumDice]bool) int {
	if gs.RollsLeft < 0 {
		panic("RollsLeft cannot be negative")
	}
	if gs.RollsLeft == 0 {
		return gs.Rules.Penalty()
	}
	for i := range gs.Dice {
		if !keep[i] {
			gs.Dice[i] = rollDie(gs.roller)
		}
	}
	gs.RollsLeft--
	return 0
}

// ScoreCategory scores the current dice in c and marks c used. Scoring a used
// category returns the penalty and changes nothing. An undefined category is
// an error.
func (gs *GameState) ScoreCategory(c Category) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	if gs.Sheet.Used(c) {
		return gs.Rules.Penalty(), nil
	}
	score, marked, err := Evaluate(c, gs.Dice, false)
	if err != nil {
		return 0, err
	}
	gs.Sheet[c] = marked
	return score, nil
}

// Terminal reports whether the game is over. GameState itself keeps accepting
// actions afterwards; callers are expected to stop.
func (gs *GameState) Terminal() bool {
	return gs.Rules.IsTerminal(gs.Sheet, gs.RollsLeft)
}

// Step applies an action and returns the resulting observation, the reward,
// whether the game is over and an empty info map.
func (gs *GameState) Step(a Action) (Observation, int, bool, map[string]any, error) {
	info := map[string]any{}

	var reward int
	if c, ok := a.Category(); ok {
		r, err := gs.ScoreCategory(c)
		if err != nil {
			return gs.Observation(), 0, gs.Terminal(), info, err
		}
		reward = r
	} else {
		reward = gs.Reroll()
	}

	return gs.Observation(), reward, gs.Terminal(), info, nil
}

// LegalActions returns the actions that do not draw the penalty.
func (gs *GameState) LegalActions() []Action {
	return gs.Observation().LegalActions()
}

// Render dumps the state for debugging.
func (gs *GameState) Render() string {
	sheet := utils.Map(gs.Sheet[:], func(used bool) int {
		if used {
			return 1
		}
		return 0
	})
	return fmt.Sprintf("Dice: %v, Rolls left: %d, Score Sheet: %v", gs.Dice, gs.RollsLeft, sheet)
}
