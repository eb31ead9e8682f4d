package output

import (
	"sort"

	"runscan/pkg/api"
	"runscan/pkg/runlen"
)

// ToRuns converts a Result map into sorted RunV1 rows. Maps have no stable
// order, so every writer goes through this for determinism.
func ToRuns(r runlen.Result) []api.RunV1 {
	out := make([]api.RunV1, 0, len(r))
	for b, n := range r {
		out = append(out, api.RunV1{Character: string(b), Length: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Character < out[j].Character })
	return out
}
