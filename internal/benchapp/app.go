package benchapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"runscan/internal/bench"
	"runscan/internal/version"
)

// RunContext drives runscan-bench: load config, run the serial and
// parallel passes, print the report.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("runscan-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`runscan-bench: serial vs parallel scan throughput over generated sequences

Version: %s

Usage of runscan-bench:
`, version.Version)
		fs.PrintDefaults()
	}

	var (
		configPath string
		sequences  int
		length     int
		threads    int
		seed       int64
		showVer    bool
	)
	fs.StringVar(&configPath, "config", "", "YAML config file [none]")
	fs.IntVar(&sequences, "sequences", 0, "override: number of generated sequences [config]")
	fs.IntVar(&length, "length", 0, "override: length of each sequence [config]")
	fs.IntVar(&threads, "threads", -1, "override: single parallel worker count, replacing the config's threads list (0 = all CPUs) [config]")
	fs.Int64Var(&seed, "seed", 0, "override: RNG seed (0 = clock) [config]")
	fs.BoolVar(&showVer, "version", false, "print version and exit [false]")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if showVer {
		fmt.Fprintf(stdout, "runscan-bench version %s\n", version.Version)
		return 0
	}

	cfg, err := bench.Load(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if sequences > 0 {
		cfg.Sequences = sequences
	}
	if length > 0 {
		cfg.Length = length
	}
	if threads >= 0 {
		cfg.Threads = []int{threads}
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := bench.Run(parent, cfg, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
