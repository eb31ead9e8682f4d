package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sort"

	"runscan/internal/cli"
	"runscan/internal/cmdutil"
	"runscan/internal/output"
	"runscan/internal/pipeline"
	"runscan/internal/version"
	"runscan/pkg/api"
	"runscan/pkg/runlen"
)

// RunContext parses argv, scans all input sequences in parallel, folds the
// per-sequence results into one aggregate, and writes the report.
// Exit codes: 0 ok, 1 scan/runtime error, 2 usage error, 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("runscan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); output.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); e != nil && !output.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "runscan version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !output.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}

	scanOpt := runlen.Options{
		StopCodon:     opts.StopCodon,
		Gap:           opts.Gap,
		CaseSensitive: !opts.IgnoreCase,
	}
	pcfg := pipeline.Config{Threads: threads, ContinueOnError: opts.SkipInvalid}

	agg := make(runlen.Result)
	var perSeq []api.SequenceV1
	scanned, skipped := 0, 0

	err = pipeline.ForEachResult(parent, pcfg, opts.SeqFiles, scanOpt, func(sr pipeline.SeqResult) error {
		if sr.Err != nil {
			skipped++
			cmdutil.Warnf(stderr, opts.Quiet, "skipping %s (%s): %v", sr.SequenceID, sr.SourceFile, sr.Err)
			return nil
		}
		scanned++
		agg.Fold(sr.Longest)
		if opts.PerSequence {
			perSeq = append(perSeq, api.SequenceV1{
				SequenceID: sr.SequenceID,
				SourceFile: sr.SourceFile,
				Runs:       output.ToRuns(sr.Longest),
			})
		}
		return nil
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	// Collector order is scheduling-dependent; sort for determinism.
	sort.Slice(perSeq, func(i, j int) bool {
		if perSeq[i].SourceFile != perSeq[j].SourceFile {
			return perSeq[i].SourceFile < perSeq[j].SourceFile
		}
		return perSeq[i].SequenceID < perSeq[j].SequenceID
	})

	rep := api.ReportV1{
		Sequences:   scanned,
		Skipped:     skipped,
		Aggregate:   output.ToRuns(agg),
		PerSequence: perSeq,
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, rep)
	default:
		err = output.WriteText(outw, rep, opts.Header)
	}
	if err == nil {
		err = outw.Flush()
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
