package engine

import (
	"time"

	"yahtzee/agent"
	"yahtzee/experiments/metrics"
	"yahtzee/game"
	"yahtzee/meta"

	"github.com/rs/zerolog/log"
)

// Engine plays episodes of a single game state with one agent. It is the
// caller that stops play once the game state reports the end.
type Engine struct {
	State   *game.GameState
	Agent   agent.Agent
	History []Update
	over    bool
	metric  metrics.EpisodeMetric
}

func LocalEngine(a agent.Agent, state *game.GameState) *Engine {
	if a == nil {
		panic("engine needs an agent")
	}
	if state == nil {
		panic("engine needs a game state")
	}
	return &Engine{
		State: state,
		Agent: a,
	}
}

// Reset starts a new episode and returns its first observation.
func (e *Engine) Reset() game.Observation {
	e.over = false
	e.History = nil
	e.metric = metrics.EpisodeMetric{StartTime: time.Now()}
	return e.State.Reset()
}

// Play applies one action. Actions after the episode has ended are rejected
// with ErrGameOver, and undefined categories are returned as errors without
// touching the state.
func (e *Engine) Play(action game.Action) (Update, error) {
	if e.over {
		return Update{}, ErrGameOver
	}

	penalized := e.isPenalized(action)
	obs, reward, done, _, err := e.State.Step(action)
	if err != nil {
		return Update{}, err
	}

	e.metric.Steps++
	e.metric.TotalReward += reward
	switch {
	case penalized:
		e.metric.Penalties++
	case action == game.RerollAction:
		e.metric.Rerolls++
	default:
		e.metric.Scored++
	}

	u := Update{Action: action, Observation: obs, Reward: reward, Done: done}
	e.History = append(e.History, u)
	e.over = done
	return u, nil
}

func (e *Engine) isPenalized(action game.Action) bool {
	if c, ok := action.Category(); ok {
		return c.Valid() && e.State.Sheet.Used(c)
	}
	return e.State.RollsLeft == 0
}

// Run plays a full episode until the game ends or meta.MaxSteps actions have
// been taken.
func (e *Engine) Run() (metrics.EpisodeMetric, error) {
	obs := e.Reset()
	log.Debug().Msgf("episode started with dice %v", obs.Dice)

	for step := 0; !e.over; step++ {
		if step >= meta.MaxSteps {
			log.Warn().Msgf("stopped after %d steps without the game ending", meta.MaxSteps)
			break
		}

		action := e.Agent.Act(obs)
		u, err := e.Play(action)
		if err != nil {
			return e.finish(), err
		}
		log.Debug().Msgf("step %d: %v -> reward %d, dice %v, rolls left %d", step+1, action, u.Reward, u.Observation.Dice, u.Observation.RollsLeft)
		obs = u.Observation
	}

	metric := e.finish()
	log.Debug().Msgf("episode over after %d steps with reward %d", metric.Steps, metric.TotalReward)
	return metric, nil
}

func (e *Engine) finish() metrics.EpisodeMetric {
	e.metric.EndTime = time.Now()
	e.metric.Duration = e.metric.EndTime.Sub(e.metric.StartTime)
	return e.metric
}
