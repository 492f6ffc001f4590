package experiments

import (
	"errors"
	"fmt"
	"sync"

	"yahtzee/agent"
	"yahtzee/engine"
	"yahtzee/experiments/metrics"
	"yahtzee/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Mixed into episode seeds so an agent's draws differ from the dice.
const agentSeedMask = 0x9e3779b97f4a7c15

// Run plays cfg.Episodes episodes for every configured agent and returns one
// summary per agent. Episode i of every agent is seeded from cfg.Seed+i, so
// agents face the same opening dice and reruns reproduce the same results.
func Run(cfg Config) ([]metrics.RunMetric, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	count := 0
	runs := []metrics.RunMetric{}
	records := []metrics.EpisodeRecord{}
	for i, config := range cfg.Agents {
		log.Info().Msgf("starting agent %d of %d: %+v...", i+1, len(cfg.Agents), config)

		run, agentRecords, err := runAgent(cfg, config)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		for j := range agentRecords {
			count++
			agentRecords[j].ID = count
		}
		runs = append(runs, run)
		records = append(records, agentRecords...)

		log.Info().Msgf("completed agent %d of %d: mean reward %.2f over %d episodes in %v",
			i+1, len(cfg.Agents), run.MeanReward, run.Episodes, run.Duration)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir != "" {
		if err := writeResults(cfg, runs, records); err != nil {
			return runs, err
		}
	}
	return runs, nil
}

func runAgent(cfg Config, config metrics.AgentConfig) (metrics.RunMetric, []metrics.EpisodeRecord, error) {
	// Fail on a bad agent config before starting workers
	if _, err := createAgent(config, cfg.Seed); err != nil {
		return metrics.RunMetric{}, nil, err
	}

	collector := metrics.NewCollector()
	collector.Start(config.ID, cfg.Goroutines)

	task := make(chan int, cfg.Episodes)
	for i := 0; i < cfg.Episodes; i++ {
		task <- i
	}
	close(task)

	records := make([]metrics.EpisodeRecord, cfg.Episodes)
	errs := make([]error, cfg.Goroutines)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Goroutines; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for episode := range task {
				metric, err := runEpisode(config, cfg.Seed+uint64(episode))
				if err != nil {
					errs[worker] = fmt.Errorf("episode %d: %w", episode, err)
					return
				}
				collector.AddEpisode(metric)
				records[episode] = metrics.EpisodeRecord{
					Agent:         config.ID,
					Worker:        worker,
					EpisodeMetric: metric,
				}
			}
		}(w)
	}

	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return metrics.RunMetric{}, nil, err
	}
	return collector.Complete(), records, nil
}

func runEpisode(config metrics.AgentConfig, seed uint64) (metrics.EpisodeMetric, error) {
	a, err := createAgent(config, seed)
	if err != nil {
		return metrics.EpisodeMetric{}, err
	}
	state := game.NewGameState(game.NewStandardRules(), game.NewRoller(seed))
	return engine.LocalEngine(a, state).Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	return agent.New(config, rand.New(rand.NewSource(seed^agentSeedMask)))
}

func writeResults(cfg Config, runs []metrics.RunMetric, records []metrics.EpisodeRecord) error {
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteEpisodeRecords(records); err != nil {
		return fmt.Errorf("failed to write episode records: %w", err)
	}
	log.Info().Msg("stored episode records")

	if err := writer.WriteRunMetrics(runs); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	log.Info().Msgf("stored run summary in %s", writer.Dir())
	return nil
}
