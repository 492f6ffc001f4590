package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh run directory under root/name, named by the
// current timestamp and a run id.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, fmt.Sprintf("%s-%s", timestamp, uuid.NewString()))
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "temperature", "threshold"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
			strconv.Itoa(config.Threshold),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteEpisodeRecords(records []EpisodeRecord) error {
	header := []string{"id", "agent", "worker", "steps", "total_reward", "penalties", "rerolls", "scored", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Worker),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.TotalReward),
			strconv.Itoa(record.Penalties),
			strconv.Itoa(record.Rerolls),
			strconv.Itoa(record.Scored),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	return w.write("episode_records.csv", header, rows)
}

func (w *Writer) WriteRunMetrics(runs []RunMetric) error {
	header := []string{"agent", "goroutines", "episodes", "mean_reward", "max_reward", "penalties", "steps", "duration"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			strconv.Itoa(run.Agent),
			strconv.Itoa(run.Goroutines),
			strconv.Itoa(run.Episodes),
			strconv.FormatFloat(run.MeanReward, 'f', 4, 64),
			strconv.Itoa(run.MaxReward),
			strconv.Itoa(run.Penalties),
			strconv.Itoa(run.Steps),
			run.Duration.String(),
		})
	}
	return w.write("run_summary.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
