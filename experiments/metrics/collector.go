package metrics

import (
	"math"
	"sync/atomic"
	"time"
)

type AgentConfig struct {
	ID          int     `yaml:"id"`
	Kind        string  `yaml:"kind"`        // random, greedy or sampling
	Temperature float64 `yaml:"temperature"` // sampling only
	Threshold   int     `yaml:"threshold"`   // greedy only
}

type EpisodeMetric struct {
	Steps       int
	TotalReward int
	Penalties   int // Actions rewarded with the penalty
	Rerolls     int
	Scored      int // Categories scored
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
}

type EpisodeRecord struct {
	ID     int
	Agent  int // AgentConfig.ID
	Worker int
	EpisodeMetric
}

type RunMetric struct {
	Agent      int // AgentConfig.ID
	Goroutines int
	Episodes   int
	MeanReward float64
	MaxReward  int
	Penalties  int
	Steps      int
	Duration   time.Duration
}

type Collector interface {
	Start(agent, goroutines int)
	AddEpisode(episode EpisodeMetric)
	Complete() RunMetric
}

type collector struct {
	agent       int
	goroutines  int
	startTime   time.Time
	episodes    atomic.Int64
	totalReward atomic.Int64
	maxReward   atomic.Int64
	penalties   atomic.Int64
	steps       atomic.Int64
}

func NewCollector() Collector {
	c := &collector{}
	c.maxReward.Store(math.MinInt64)
	return c
}

func (m *collector) Start(agent, goroutines int) {
	m.startTime = time.Now()
	m.agent = agent
	m.goroutines = goroutines
}

func (m *collector) AddEpisode(episode EpisodeMetric) {
	m.episodes.Add(1)
	m.totalReward.Add(int64(episode.TotalReward))
	m.penalties.Add(int64(episode.Penalties))
	m.steps.Add(int64(episode.Steps))

	reward := int64(episode.TotalReward)
	for {
		current := m.maxReward.Load()
		if reward <= current || m.maxReward.CompareAndSwap(current, reward) {
			return
		}
	}
}

func (m *collector) Complete() RunMetric {
	episodes := m.episodes.Load()
	mean := 0.0
	maxReward := 0
	if episodes > 0 {
		mean = float64(m.totalReward.Load()) / float64(episodes)
		maxReward = int(m.maxReward.Load())
	}
	return RunMetric{
		Agent:      m.agent,
		Goroutines: m.goroutines,
		Episodes:   int(episodes),
		MeanReward: mean,
		MaxReward:  maxReward,
		Penalties:  int(m.penalties.Load()),
		Steps:      int(m.steps.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent, goroutines int)      {}
func (m *dummyCollector) AddEpisode(episode EpisodeMetric) {}
func (m *dummyCollector) Complete() RunMetric              { return RunMetric{} }
