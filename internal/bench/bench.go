// Package bench measures serial vs parallel scan throughput over generated
// sequences. It only reports; it never selects which scan algorithm the
// core uses.
package bench

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"runtime"
	"sort"
	"sync"
	"time"

	"runscan/internal/gen"
	"runscan/pkg/runlen"
)

// Run generates cfg.Sequences random sequences, scans them once serially
// and once per entry in cfg.Threads on that many workers, folds every pass
// into an aggregate, and writes a latency/throughput report to w. All
// aggregates must agree; a mismatch is returned as an error.
func Run(ctx context.Context, cfg Config, w io.Writer) error {
	opt := runlen.Options{CaseSensitive: true}

	fmt.Fprintf(w, "generating %d sequences of length %d (alphabet %q)\n", cfg.Sequences, cfg.Length, cfg.Alphabet)
	seqs := gen.New(cfg.Seed, cfg.Alphabet).Sequences(cfg.Sequences, cfg.Length)

	serialAgg, serialStats, err := runSerial(ctx, cfg, seqs, opt)
	if err != nil {
		return err
	}
	writeStats(w, "serial", 1, serialStats)

	for _, tc := range cfg.Threads {
		threads := tc
		if threads == 0 {
			threads = runtime.NumCPU()
		}
		parallelAgg, parallelStats, err := runParallel(ctx, cfg, seqs, opt, threads)
		if err != nil {
			return err
		}
		writeStats(w, "parallel", threads, parallelStats)
		if !reflect.DeepEqual(serialAgg, parallelAgg) {
			return fmt.Errorf("aggregate mismatch at threads=%d: serial=%v parallel=%v", threads, serialAgg, parallelAgg)
		}
		if serialStats.Elapsed > 0 && parallelStats.Elapsed > 0 {
			fmt.Fprintf(w, "  speedup: %.2fx\n", serialStats.Elapsed.Seconds()/parallelStats.Elapsed.Seconds())
		}
	}

	fmt.Fprintf(w, "aggregate: %s\n", formatResult(serialAgg))
	return nil
}

func runSerial(ctx context.Context, cfg Config, seqs [][]byte, opt runlen.Options) (runlen.Result, Stats, error) {
	col := NewCollector(cfg.HistMinUs, cfg.HistMaxUs, cfg.HistSigFigs)
	agg := make(runlen.Result)
	start := time.Now()
	for _, seq := range seqs {
		select {
		case <-ctx.Done():
			return nil, Stats{}, ctx.Err()
		default:
		}
		t0 := time.Now()
		res, err := runlen.Scan(seq, opt)
		if err != nil {
			return nil, Stats{}, err
		}
		col.Record(time.Since(t0))
		agg.Fold(res)
	}
	return agg, col.Stats(time.Since(start)), nil
}

func runParallel(ctx context.Context, cfg Config, seqs [][]byte, opt runlen.Options, threads int) (runlen.Result, Stats, error) {
	col := NewCollector(cfg.HistMinUs, cfg.HistMaxUs, cfg.HistSigFigs)
	jobs := make(chan []byte, threads*2)
	partials := make(chan runlen.Result, threads)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		werr error
	)
	start := time.Now()
	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go func() {
			defer wg.Done()
			part := make(runlen.Result)
			for seq := range jobs {
				t0 := time.Now()
				res, err := runlen.Scan(seq, opt)
				if err != nil {
					mu.Lock()
					if werr == nil {
						werr = err
					}
					mu.Unlock()
					continue // keep draining so the feeder never blocks
				}
				col.Record(time.Since(t0))
				part.Fold(res)
			}
			partials <- part
		}()
	}

feed:
	for _, seq := range seqs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- seq:
		}
	}
	close(jobs)
	wg.Wait()
	close(partials)

	if ctx.Err() != nil {
		return nil, Stats{}, ctx.Err()
	}
	if werr != nil {
		return nil, Stats{}, werr
	}

	// Pairwise merge of the per-worker partials; fold order is irrelevant.
	agg := make(runlen.Result)
	for part := range partials {
		agg.Fold(part)
	}
	return agg, col.Stats(time.Since(start)), nil
}

func writeStats(w io.Writer, pass string, threads int, s Stats) {
	fmt.Fprintf(w, "%s (threads=%d): %d seqs in %s (%.0f seq/s)\n",
		pass, threads, s.Count, s.Elapsed.Round(time.Millisecond), s.SeqsPerSec)
	fmt.Fprintf(w, "  latency min=%s mean=%s p50=%s p90=%s p99=%s max=%s\n",
		s.Min, s.Mean, s.P50, s.P90, s.P99, s.Max)
}

func formatResult(r runlen.Result) string {
	rows := make([]string, 0, len(r))
	for _, b := range sortedKeys(r) {
		rows = append(rows, fmt.Sprintf("%c=%d", b, r[b]))
	}
	out := ""
	for i, row := range rows {
		if i > 0 {
			out += " "
		}
		out += row
	}
	return out
}

func sortedKeys(r runlen.Result) []byte {
	keys := make([]byte, 0, len(r))
	for b := range r {
		keys = append(keys, b)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
