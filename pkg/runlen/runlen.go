package runlen

import "bytes"

// Options is the scan-time configuration surface.
type Options struct {
	// StopCodon is a single reserved character (usually "*"), or empty.
	// It is exempt from letter validation but otherwise scans as an
	// ordinary character.
	StopCodon string
	// Gap is a single reserved character (usually "-"), or empty.
	// Same treatment as StopCodon.
	Gap string
	// CaseSensitive keeps 'A' and 'a' distinct. When false the sequence
	// is lowercased before scanning.
	CaseSensitive bool
}

// Result maps a character to a run length. The same shape serves both the
// per-sequence output of Scan (every value equals that sequence's maximum
// run length) and the cross-sequence aggregate built by Reduce/Fold.
type Result map[byte]int

// Sequences longer than this use the run-boundary scan; shorter ones use
// the plain linear walk. The two are interchangeable (see parity tests).
const boundaryThreshold = 1 << 12

// Scan returns the characters whose longest contiguous run in seq attains
// the sequence-wide maximum run length, mapped to that length. Ties are all
// retained. An empty sequence returns an empty Result immediately, before
// any validation; this ordering is deliberate and pinned by tests.
//
// Scan is a pure function and safe to call from any number of goroutines.
func Scan(seq []byte, opt Options) (Result, error) {
	if len(seq) == 0 {
		return Result{}, nil
	}
	if len(opt.StopCodon) > 1 {
		return nil, &ConfigError{Param: "stop-codon", Value: opt.StopCodon}
	}
	if len(opt.Gap) > 1 {
		return nil, &ConfigError{Param: "gap", Value: opt.Gap}
	}

	if !opt.CaseSensitive {
		seq = bytes.ToLower(seq)
	}

	if err := validate(seq, opt); err != nil {
		return nil, err
	}

	if len(seq) >= boundaryThreshold {
		return scanBoundaries(seq), nil
	}
	return scanLinear(seq), nil
}

// validate checks that seq holds only ASCII letters once the stop-codon and
// gap symbols are exempted.
func validate(seq []byte, opt Options) error {
	var stop, gap byte
	hasStop := len(opt.StopCodon) == 1
	hasGap := len(opt.Gap) == 1
	if hasStop {
		stop = opt.StopCodon[0]
	}
	if hasGap {
		gap = opt.Gap[0]
	}
	for i, b := range seq {
		if hasStop && b == stop {
			continue
		}
		if hasGap && b == gap {
			continue
		}
		if !isLetter(b) {
			return &InputError{Char: b, Pos: i + 1}
		}
	}
	return nil
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
