package main

import (
	"flag"
	"os"
	"time"

	"yahtzee/experiments"
	"yahtzee/meta"
	"yahtzee/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML experiment config")
	serve := flag.Bool("serve", false, "Serve game environments over HTTP instead of running an experiment")
	addr := flag.String("addr", meta.DefaultServerAddr, "Address to serve environments on")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	episodes := flag.Int("episodes", 0, "Episodes per agent, overrides the config")
	seed := flag.Uint64("seed", 0, "Experiment seed, overrides the config")
	flag.Parse()

	setupLogger(*logLevel)

	if *serve {
		if err := server.NewServer().ListenAndServe(*addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}
	if *episodes > 0 {
		cfg.Episodes = *episodes
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}

	runs, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, run := range runs {
		log.Info().Msgf("agent %d: mean reward %.2f, max reward %d, %d penalties over %d episodes",
			run.Agent, run.MeanReward, run.MaxReward, run.Penalties, run.Episodes)
	}
}

func setupLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
}
