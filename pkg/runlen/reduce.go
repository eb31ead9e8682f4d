package runlen

// Fold merges other into r, keeping the larger length per character. A key
// absent from r is simply taken from other; no synthetic zero entries are
// ever created, so folded values only grow. Fold(max) is commutative and
// associative, which makes any fold order — serial or pairwise-parallel —
// produce the same aggregate.
func (r Result) Fold(other Result) {
	for b, n := range other {
		if n > r[b] {
			r[b] = n
		}
	}
}

// Reduce folds a collection of per-sequence results into one aggregate:
// the per-character maximum run length across all inputs. Reduce([]) and
// Reduce over only-empty results both yield an empty Result. Reduce never
// fails.
func Reduce(results []Result) Result {
	out := make(Result)
	for _, r := range results {
		out.Fold(r)
	}
	return out
}
