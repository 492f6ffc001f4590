package agent

import (
	"testing"

	"yahtzee/experiments/metrics"
	"yahtzee/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func observation(dice game.Hand, rollsLeft int, used ...game.Category) game.Observation {
	obs := game.Observation{Dice: dice, RollsLeft: rollsLeft}
	for _, c := range used {
		obs.Sheet[c] = true
	}
	return obs
}

func TestGreedyAgent(t *testing.T) {
	t.Run("scores the best open category", func(t *testing.T) {
		a := NewGreedyAgent(0)

		got := a.Act(observation(game.Hand{6, 6, 6, 6, 6}, 3))

		require.Equal(t, game.ScoreAction(game.Yahtzee), got)
	})

	t.Run("skips used categories", func(t *testing.T) {
		a := NewGreedyAgent(0)

		got := a.Act(observation(game.Hand{2, 3, 4, 5, 6}, 3, game.LargeStraight))

		require.Equal(t, game.ScoreAction(game.SmallStraight), got)
	})

	t.Run("rerolls below threshold while rolls remain", func(t *testing.T) {
		a := NewGreedyAgent(20)

		got := a.Act(observation(game.Hand{1, 2, 4, 5, 6}, 2))

		require.Equal(t, game.RerollAction, got)
	})

	t.Run("never spends the last roll", func(t *testing.T) {
		a := NewGreedyAgent(20)

		got := a.Act(observation(game.Hand{1, 2, 4, 5, 6}, 1))

		require.Equal(t, game.ScoreAction(game.Sixes), got)
	})

	t.Run("breaks ties by lowest index", func(t *testing.T) {
		a := NewGreedyAgent(0)

		// Fours and Pair both score 8
		got := a.Act(observation(game.Hand{4, 4, 1, 2, 6}, 3, game.Sixes))

		require.Equal(t, game.ScoreAction(game.Fours), got)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("only picks penalty-free actions", func(t *testing.T) {
		a := NewRandomAgent(rand.New(rand.NewSource(7)))
		obs := observation(game.Hand{1, 2, 3, 4, 5}, 0, game.Ones, game.Twos, game.Threes)

		for i := 0; i < 200; i++ {
			action := a.Act(obs)
			c, ok := action.Category()
			require.True(t, ok, "Should not reroll without rolls left")
			require.False(t, obs.Sheet.Used(c), "Should not pick used category %v", c)
		}
	})

	t.Run("same seed plays the same actions", func(t *testing.T) {
		obs := observation(game.Hand{1, 2, 3, 4, 5}, 2)
		a1 := NewRandomAgent(rand.New(rand.NewSource(3)))
		a2 := NewRandomAgent(rand.New(rand.NewSource(3)))

		for i := 0; i < 50; i++ {
			require.Equal(t, a1.Act(obs), a2.Act(obs))
		}
	})
}

func TestSamplingAgent(t *testing.T) {
	t.Run("cold temperature behaves greedily", func(t *testing.T) {
		a := NewSamplingAgent(rand.New(rand.NewSource(11)), 0.001)
		obs := observation(game.Hand{5, 5, 5, 5, 5}, 3)

		for i := 0; i < 50; i++ {
			require.Equal(t, game.ScoreAction(game.Yahtzee), a.Act(obs))
		}
	})

	t.Run("adjusted policy is normalized", func(t *testing.T) {
		policy := adjustTemperature([]float64{1, 3, 6}, 1.0)

		require.InDeltaSlice(t, []float64{0.1, 0.3, 0.6}, policy, 1e-9)
	})

	t.Run("sample walks the cumulative distribution", func(t *testing.T) {
		policy := []float64{0.1, 0.3, 0.6}

		require.Equal(t, 0, sample(policy, 0.05))
		require.Equal(t, 1, sample(policy, 0.35))
		require.Equal(t, 2, sample(policy, 0.99))
		require.Equal(t, 2, sample(policy, 1.0), "Should fall back to the last action")
	})
}

func TestNew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("builds each kind", func(t *testing.T) {
		for _, kind := range []string{RandomKind, GreedyKind, SamplingKind} {
			a, err := New(metrics.AgentConfig{ID: 1, Kind: kind, Temperature: 1}, rng)

			require.NoError(t, err, kind)
			require.NotNil(t, a, kind)
		}
	})

	t.Run("rejects sampling without temperature", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{ID: 2, Kind: SamplingKind}, rng)

		require.Error(t, err)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := New(metrics.AgentConfig{ID: 3, Kind: "expectimax"}, rng)

		require.Error(t, err)
	})
}
