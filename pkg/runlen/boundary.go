package runlen

// scanBoundaries is the run-boundary form of the scan: collect the indices
// where a new run starts (index 0 always starts one), derive run lengths
// from consecutive boundaries with len(seq) as the final sentinel, then
// gather the characters at the boundaries whose run attains the maximum.
// It touches no map until the final gather, which keeps the hot loop on a
// flat int slice; preferred for long sequences. seq must be non-empty and
// already normalized.
func scanBoundaries(seq []byte) Result {
	starts := make([]int, 1, 64)
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			starts = append(starts, i)
		}
	}

	max := 0
	for i, s := range starts {
		end := len(seq)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if n := end - s; n > max {
			max = n
		}
	}

	out := make(Result, 2)
	for i, s := range starts {
		end := len(seq)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if end-s == max {
			out[seq[s]] = max
		}
	}
	return out
}
