package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"runscan/internal/app"
	"runscan/pkg/api"
)

func writeFasta(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.RunContext(context.Background(), args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestTextAggregate(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\naaa\n>s2\naabbbbcc\n>s3\naabb\n")

	code, out, errOut := run(t, "--sequences", fa)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	want := "character\tlength\na\t3\nb\t4\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestJSONReport(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\na***b\n")

	code, out, errOut := run(t, "--sequences", fa, "--stop-codon", "*", "--output", "json", "--per-sequence")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if rep.Sequences != 1 || len(rep.Aggregate) != 1 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.Aggregate[0].Character != "*" || rep.Aggregate[0].Length != 3 {
		t.Fatalf("aggregate = %+v", rep.Aggregate)
	}
	if len(rep.PerSequence) != 1 || rep.PerSequence[0].SequenceID != "s1" {
		t.Fatalf("per-sequence = %+v", rep.PerSequence)
	}
}

func TestIgnoreCase(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\naaaaBBbbBBA\n")

	code, out, _ := run(t, "--sequences", fa, "--ignore-case", "--no-header")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if out != "b\t6\n" {
		t.Fatalf("stdout = %q", out)
	}

	code, out, _ = run(t, "--sequences", fa, "--no-header")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if out != "a\t4\n" {
		t.Fatalf("case-sensitive stdout = %q", out)
	}
}

func TestMultipleFiles(t *testing.T) {
	fa1 := writeFasta(t, "a.fa", ">s1\naaa\n")
	fa2 := writeFasta(t, "b.fa", ">s2\nbbbb\n")

	code, out, _ := run(t, "--sequences", fa1, "--sequences", fa2, "--no-header")
	if code != 0 {
		t.Fatalf("exit=%d", code)
	}
	if out != "b\t4\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestInvalidContentAborts(t *testing.T) {
	fa := writeFasta(t, "bad.fa", ">s1\naa11\n")

	code, _, errOut := run(t, "--sequences", fa)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "invalid character") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestSkipInvalidContinues(t *testing.T) {
	fa := writeFasta(t, "mixed.fa", ">good\naaa\n>bad\naa11\n")

	code, out, errOut := run(t, "--sequences", fa, "--skip-invalid", "--no-header")
	if code != 0 {
		t.Fatalf("exit=%d stderr=%q", code, errOut)
	}
	if out != "a\t3\n" {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(errOut, "WARN") || !strings.Contains(errOut, "bad") {
		t.Fatalf("expected skip warning, stderr = %q", errOut)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"--sequences", "x.fa", "--stop-codon", "AUG"},
		{"--sequences", "x.fa", "--output", "xml"},
	}
	for _, args := range cases {
		code, _, _ := run(t, args...)
		if code != 2 {
			t.Errorf("args %v: exit=%d, want 2", args, code)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "runscan version ") {
		t.Fatalf("exit=%d stdout=%q", code, out)
	}
}

func TestCancelledContext(t *testing.T) {
	fa := writeFasta(t, "in.fa", ">s1\naaa\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{"--sequences", fa}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
}
