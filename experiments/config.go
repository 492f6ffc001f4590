package experiments

import (
	"errors"
	"fmt"
	"os"

	"yahtzee/experiments/metrics"
	"yahtzee/meta"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name       string                `yaml:"name"`
	Episodes   int                   `yaml:"episodes"`   // Per agent
	Goroutines int                   `yaml:"goroutines"` // Episode workers per agent
	Seed       uint64                `yaml:"seed"`
	OutputDir  string                `yaml:"output_dir"` // Empty skips writing CSVs
	Agents     []metrics.AgentConfig `yaml:"agents"`
}

// DefaultConfig compares the built-in agents.
func DefaultConfig() Config {
	return Config{
		Name:       "baseline",
		Episodes:   meta.DefaultEpisodes,
		Goroutines: meta.DefaultGoroutines,
		Seed:       meta.DefaultSeed,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: "random"},
			{ID: 2, Kind: "greedy", Threshold: 20},
			{ID: 3, Kind: "sampling", Temperature: 0.5},
		},
	}
}

// LoadConfig reads a YAML experiment file. Unset fields take their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "experiment"
	}
	if c.Episodes == 0 {
		c.Episodes = meta.DefaultEpisodes
	}
	if c.Goroutines == 0 {
		c.Goroutines = meta.DefaultGoroutines
	}
	if c.Seed == 0 {
		c.Seed = meta.DefaultSeed
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Episodes <= 0 {
		errs = append(errs, fmt.Errorf("episodes must be positive, got %d", c.Episodes))
	}
	if c.Goroutines <= 0 {
		errs = append(errs, fmt.Errorf("goroutines must be positive, got %d", c.Goroutines))
	}
	if len(c.Agents) == 0 {
		errs = append(errs, errors.New("at least one agent is required"))
	}
	seen := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if seen[agent.ID] {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", agent.ID))
		}
		seen[agent.ID] = true
	}
	return errors.Join(errs...)
}
