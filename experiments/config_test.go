package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"yahtzee/experiments/metrics"
	"yahtzee/meta"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("reading every field", func(t *testing.T) {
		path := writeConfig(t, `
name: thresholds
episodes: 50
goroutines: 2
seed: 9
output_dir: out
agents:
  - id: 1
    kind: greedy
    threshold: 15
  - id: 2
    kind: sampling
    temperature: 0.25
`)

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, Config{
			Name:       "thresholds",
			Episodes:   50,
			Goroutines: 2,
			Seed:       9,
			OutputDir:  "out",
			Agents: []metrics.AgentConfig{
				{ID: 1, Kind: "greedy", Threshold: 15},
				{ID: 2, Kind: "sampling", Temperature: 0.25},
			},
		}, cfg)
	})

	t.Run("filling defaults", func(t *testing.T) {
		path := writeConfig(t, "agents:\n  - id: 1\n    kind: random\n")

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "experiment", cfg.Name)
		require.Equal(t, meta.DefaultEpisodes, cfg.Episodes)
		require.Equal(t, meta.DefaultGoroutines, cfg.Goroutines)
		require.Equal(t, uint64(meta.DefaultSeed), cfg.Seed)
	})

	t.Run("rejecting missing agents", func(t *testing.T) {
		path := writeConfig(t, "episodes: 10\n")

		_, err := LoadConfig(path)

		require.ErrorContains(t, err, "at least one agent")
	})

	t.Run("rejecting duplicate agent ids", func(t *testing.T) {
		path := writeConfig(t, "agents:\n  - id: 1\n    kind: random\n  - id: 1\n    kind: greedy\n")

		_, err := LoadConfig(path)

		require.ErrorContains(t, err, "duplicate agent id 1")
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "agents: [\n")

		_, err := LoadConfig(path)

		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("reporting missing files", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultConfig(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
