package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives a benchmark run. All fields have runnable defaults so the
// tool works without a config file.
type Config struct {
	Sequences int    `yaml:"sequences"` // number of generated sequences
	Length    int    `yaml:"length"`    // length of each sequence
	Alphabet  string `yaml:"alphabet"`
	Threads   []int  `yaml:"threads"` // worker counts, one parallel pass each (0 = all CPUs)
	Seed      int64  `yaml:"seed"`    // 0 = seed from the clock

	// Histogram bounds for per-sequence scan latencies, in microseconds.
	HistMinUs   int64 `yaml:"hist_min_us"`
	HistMaxUs   int64 `yaml:"hist_max_us"`
	HistSigFigs int   `yaml:"hist_sigfigs"`
}

// Default returns the baseline configuration: one parallel pass on all
// CPUs, latencies tracked from 1µs to 60s at 3 significant figures.
func Default() Config {
	return Config{
		Sequences:   100_000,
		Length:      1000,
		Alphabet:    "gatc",
		Threads:     []int{0},
		Seed:        0,
		HistMinUs:   1,
		HistMaxUs:   60_000_000,
		HistSigFigs: 3,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("bench config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("bench config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Sequences <= 0 {
		return fmt.Errorf("bench config: sequences must be > 0, got %d", c.Sequences)
	}
	if c.Length <= 0 {
		return fmt.Errorf("bench config: length must be > 0, got %d", c.Length)
	}
	if len(c.Threads) == 0 {
		return fmt.Errorf("bench config: threads must list at least one worker count")
	}
	for _, n := range c.Threads {
		if n < 0 {
			return fmt.Errorf("bench config: threads entries must be ≥ 0, got %d", n)
		}
	}
	if c.Alphabet == "" {
		return fmt.Errorf("bench config: alphabet must not be empty")
	}
	if c.HistMinUs < 1 {
		return fmt.Errorf("bench config: hist_min_us must be ≥ 1, got %d", c.HistMinUs)
	}
	if c.HistMaxUs <= c.HistMinUs {
		return fmt.Errorf("bench config: hist_max_us must be > hist_min_us, got %d", c.HistMaxUs)
	}
	if c.HistSigFigs < 1 || c.HistSigFigs > 5 {
		return fmt.Errorf("bench config: hist_sigfigs must be 1..5, got %d", c.HistSigFigs)
	}
	return nil
}
