package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"runscan/pkg/runlen"
)

func writeFasta(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	return path
}

func TestForEachResultAggregates(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\naaa\n>s2\naabbbbcc\n>s3\naabb\n")

	agg := make(runlen.Result)
	seen := 0
	err := ForEachResult(context.Background(), Config{Threads: 4}, []string{fa},
		runlen.Options{CaseSensitive: true},
		func(sr SeqResult) error {
			seen++
			agg.Fold(sr.Longest)
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if seen != 3 {
		t.Fatalf("expected 3 results, got %d", seen)
	}
	if want := (runlen.Result{'a': 3, 'b': 4}); !reflect.DeepEqual(agg, want) {
		t.Fatalf("aggregate = %v, want %v", agg, want)
	}
}

func TestForEachResultAbortsOnInvalid(t *testing.T) {
	fa := writeFasta(t, "bad.fa", ">good\naaa\n>bad\naa11\n")

	err := ForEachResult(context.Background(), Config{Threads: 2}, []string{fa},
		runlen.Options{CaseSensitive: true},
		func(SeqResult) error { return nil })
	var ie *runlen.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *runlen.InputError", err)
	}
}

func TestForEachResultContinueOnError(t *testing.T) {
	fa := writeFasta(t, "bad.fa", ">good\naaa\n>bad\naa11\n>also\nbb\n")

	var good, failed int
	err := ForEachResult(context.Background(), Config{Threads: 2, ContinueOnError: true}, []string{fa},
		runlen.Options{CaseSensitive: true},
		func(sr SeqResult) error {
			if sr.Err != nil {
				failed++
				return nil
			}
			good++
			return nil
		})
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if good != 2 || failed != 1 {
		t.Fatalf("good=%d failed=%d, want 2/1", good, failed)
	}
}

func TestForEachResultMissingFile(t *testing.T) {
	err := ForEachResult(context.Background(), Config{Threads: 1},
		[]string{filepath.Join(t.TempDir(), "nope.fa")},
		runlen.Options{CaseSensitive: true},
		func(SeqResult) error { return nil })
	if err == nil {
		t.Fatal("expected open error")
	}
}

// A missing file mid-list must be reported without losing the other files'
// results, and without the feeder touching the collector's error state
// while workers are still delivering.
func TestForEachResultMissingFileAmongGood(t *testing.T) {
	good1 := writeFasta(t, "a.fa", ">s1\naaa\n>s2\nbbbb\n")
	good2 := writeFasta(t, "b.fa", ">s3\ncc\n")
	missing := filepath.Join(t.TempDir(), "nope.fa")

	agg := make(runlen.Result)
	seen := 0
	err := ForEachResult(context.Background(), Config{Threads: 4},
		[]string{good1, missing, good2},
		runlen.Options{CaseSensitive: true},
		func(sr SeqResult) error {
			seen++
			agg.Fold(sr.Longest)
			return nil
		})
	if err == nil {
		t.Fatal("expected open error for the missing file")
	}
	if seen != 3 {
		t.Fatalf("expected 3 results from the good files, got %d", seen)
	}
	if want := (runlen.Result{'a': 3, 'b': 4, 'c': 2}); !reflect.DeepEqual(agg, want) {
		t.Fatalf("aggregate = %v, want %v", agg, want)
	}
}

func TestForEachResultCancel(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\naaa\n>s2\nbbb\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachResult(ctx, Config{Threads: 2}, []string{fa},
		runlen.Options{CaseSensitive: true},
		func(SeqResult) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
