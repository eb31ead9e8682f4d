package cli

import (
	"errors"
	"flag"
	"fmt"

	"runscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Scan configuration
	StopCodon  string
	Gap        string
	IgnoreCase bool

	// Performance
	Threads int

	// Output
	Output      string // text | json
	PerSequence bool
	SkipInvalid bool
	Header      bool // true unless --no-header
	Quiet       bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: longest contiguous run scanner for biological sequences

Reports, per input collection, the character(s) with the longest run of
identical consecutive characters, keeping the per-character maximum
across all sequences.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seq stringSlice
	fs.Var(&seq, "sequences", "FASTA file(s) (repeatable, gzip ok, or '-' for stdin) [*]")

	// Scan configuration
	fs.StringVar(&opt.StopCodon, "stop-codon", "", "single-character stop-codon symbol, usually '*' [none]")
	fs.StringVar(&opt.Gap, "gap", "", "single-character gap symbol, usually '-' [none]")
	fs.BoolVar(&opt.IgnoreCase, "ignore-case", false, "merge upper/lower case before scanning [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.PerSequence, "per-sequence", false, "also emit one row per input sequence [false]")
	fs.BoolVar(&opt.SkipInvalid, "skip-invalid", false, "warn and skip sequences with invalid content instead of aborting [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeqFiles = seq
	opt.Header = !noHeader

	// Validation
	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one --sequences file is required")
	}
	if len(opt.StopCodon) > 1 {
		return opt, fmt.Errorf("--stop-codon must be a single character, got %q", opt.StopCodon)
	}
	if len(opt.Gap) > 1 {
		return opt, fmt.Errorf("--gap must be a single character, got %q", opt.Gap)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice lets --sequences repeat.
type stringSlice []string

func (s *stringSlice) String() string { return fmt.Sprint(*s) }
func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}
