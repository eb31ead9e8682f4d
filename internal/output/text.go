package output

import (
	"fmt"
	"io"

	"runscan/pkg/api"
)

// WriteText prints the aggregate as TSV, one character per line, and the
// per-sequence rows (if any) after a blank separator.
func WriteText(w io.Writer, rep api.ReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rep.Aggregate {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.Character, r.Length); err != nil {
			return err
		}
	}
	if len(rep.PerSequence) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, SeqTSVHeader); err != nil {
			return err
		}
	}
	for _, s := range rep.PerSequence {
		for _, r := range s.Runs {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", s.SequenceID, s.SourceFile, r.Character, r.Length); err != nil {
				return err
			}
		}
	}
	return nil
}
