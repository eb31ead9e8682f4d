// Package pipeline fans sequence records out to scan workers and streams
// per-sequence results to a single collector. It never imports app, cli, or
// output.
package pipeline

import (
	"context"
	"sync"

	"runscan/internal/fasta"
	"runscan/pkg/runlen"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	// ContinueOnError surfaces a failing sequence through visit (Err set)
	// instead of aborting the batch.
	ContinueOnError bool
}

// SeqResult is the per-sequence outcome delivered to the collector.
// Exactly one of Longest/Err is meaningful.
type SeqResult struct {
	SequenceID string
	SourceFile string
	Longest    runlen.Result
	Err        error
}

// ForEachResult streams SeqResults to the caller via visit. It reads whole
// records from seqFiles, scans each on a worker, and calls visit from a
// single collector goroutine, so visit needs no locking. It returns the
// first error encountered (including context cancellation). Scan errors
// abort the batch unless cfg.ContinueOnError is set.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	opt runlen.Options,
	visit func(SeqResult) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan SeqResult, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res, err := runlen.Scan(j.rec.Seq, opt)
					sr := SeqResult{
						SequenceID: j.rec.ID,
						SourceFile: j.sourceFile,
						Longest:    res,
						Err:        err,
					}
					select {
					case results <- sr:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for sr := range results {
			if cerr != nil {
				continue
			}
			if sr.Err != nil && !cfg.ContinueOnError {
				cerr = sr.Err
				continue
			}
			if err := visit(sr); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work. Open failures are recorded in feedErr, never in cerr:
	// cerr belongs to the collector goroutine, and both are only read
	// after the WaitGroups below settle.
	var feedErr error
feed:
	for _, fa := range seqFiles {
		rch, err := fasta.Records(ctx, fa)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if feedErr == nil {
				feedErr = err
			}
			continue
		}
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: fa}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if cerr != nil {
		return cerr
	}
	return feedErr
}
