package engine

import (
	"testing"

	"yahtzee/agent"
	"yahtzee/game"
	"yahtzee/meta"

	"github.com/stretchr/testify/require"
)

type fixedRoller struct {
	face int
}

func (r fixedRoller) Intn(n int) int {
	return r.face - 1
}

// scriptedAgent replays actions, repeating the last one when it runs out.
type scriptedAgent struct {
	actions []game.Action
	next    int
}

func (a *scriptedAgent) Act(obs game.Observation) game.Action {
	action := a.actions[min(a.next, len(a.actions)-1)]
	a.next++
	return action
}

func newState(face int) *game.GameState {
	return game.NewGameState(game.NewStandardRules(), fixedRoller{face: face})
}

func TestEngineRun(t *testing.T) {
	t.Run("greedy agent fills the sheet", func(t *testing.T) {
		e := LocalEngine(agent.NewGreedyAgent(0), newState(6))

		metric, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NumCategories, metric.Steps)
		require.Equal(t, game.NumCategories, metric.Scored)
		require.Zero(t, metric.Penalties)
		// Sixes 30, Pair 12, ThreeKind 18, FourKind 24, FullHouse 25, Yahtzee 50
		require.Equal(t, 159, metric.TotalReward)
		require.True(t, e.State.Sheet.Full())
		require.Equal(t, game.ScoreAction(game.Yahtzee), e.History[0].Action, "Should take the best category first")
	})

	t.Run("spending every roll ends the episode", func(t *testing.T) {
		e := LocalEngine(&scriptedAgent{actions: []game.Action{game.RerollAction}}, newState(2))

		metric, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 3, metric.Steps)
		require.Equal(t, 3, metric.Rerolls)
		require.Zero(t, metric.TotalReward)
		require.True(t, e.History[len(e.History)-1].Done)
	})

	t.Run("counting penalties", func(t *testing.T) {
		script := []game.Action{
			game.ScoreAction(game.Ones),
			game.ScoreAction(game.Ones),
			game.RerollAction,
		}
		e := LocalEngine(&scriptedAgent{actions: script}, newState(1))

		metric, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 5, metric.Steps)
		require.Equal(t, 1, metric.Penalties)
		require.Equal(t, 1, metric.Scored)
		require.Equal(t, 3, metric.Rerolls)
		require.Equal(t, 5-1, metric.TotalReward)
	})

	t.Run("stopping at the step cap", func(t *testing.T) {
		script := []game.Action{game.ScoreAction(game.Twos)}
		e := LocalEngine(&scriptedAgent{actions: script}, newState(2))

		metric, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, meta.MaxSteps, metric.Steps)
		require.Equal(t, meta.MaxSteps-1, metric.Penalties)
		require.Equal(t, 10-(meta.MaxSteps-1), metric.TotalReward)
	})

	t.Run("surfacing invalid categories", func(t *testing.T) {
		e := LocalEngine(&scriptedAgent{actions: []game.Action{game.Action(game.NumActions)}}, newState(3))

		_, err := e.Run()

		require.ErrorIs(t, err, game.ErrInvalidCategory)
	})
}

func TestEnginePlay(t *testing.T) {
	t.Run("rejecting actions after the game is over", func(t *testing.T) {
		e := LocalEngine(agent.NewGreedyAgent(0), newState(4))
		e.Reset()
		for i := 0; i < 3; i++ {
			_, err := e.Play(game.RerollAction)
			require.NoError(t, err)
		}

		_, err := e.Play(game.ScoreAction(game.Fours))

		require.ErrorIs(t, err, ErrGameOver)
		require.False(t, e.State.Sheet.Used(game.Fours), "State should not change after the game is over")
	})

	t.Run("reset reopens the episode", func(t *testing.T) {
		e := LocalEngine(agent.NewGreedyAgent(0), newState(4))
		e.Reset()
		for i := 0; i < 3; i++ {
			_, err := e.Play(game.RerollAction)
			require.NoError(t, err)
		}

		obs := e.Reset()
		u, err := e.Play(game.ScoreAction(game.Fours))

		require.NoError(t, err)
		require.Equal(t, 3, obs.RollsLeft)
		require.Equal(t, 20, u.Reward)
		require.Len(t, e.History, 1)
	})
}
