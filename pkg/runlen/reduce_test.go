package runlen

import (
	"reflect"
	"testing"
)

func TestReduceTable(t *testing.T) {
	cases := []struct {
		name string
		in   []Result
		want Result
	}{
		{"empty collection", nil, Result{}},
		{"single empty", []Result{{}}, Result{}},
		{"single", []Result{{'a': 4}}, Result{'a': 4}},
		{"max per key", []Result{{'a': 4}, {'b': 6, 'a': 2}, {'b': 10}}, Result{'a': 4, 'b': 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reduce(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Reduce(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// Fold order must not matter: every permutation of the inputs produces the
// same aggregate.
func TestReduceOrderIndependent(t *testing.T) {
	in := []Result{{'a': 4}, {'b': 6, 'a': 2}, {'b': 10}, {}}
	want := Reduce(in)

	var permute func(rs []Result, k int)
	permute = func(rs []Result, k int) {
		if k == len(rs) {
			got := Reduce(rs)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("Reduce(%v) = %v, want %v", rs, got, want)
			}
			return
		}
		for i := k; i < len(rs); i++ {
			rs[k], rs[i] = rs[i], rs[k]
			permute(rs, k+1)
			rs[k], rs[i] = rs[i], rs[k]
		}
	}
	permute(in, 0)
}

// Folding more results in can only grow a key's value.
func TestFoldMonotone(t *testing.T) {
	agg := Result{}
	steps := []Result{{'a': 3}, {'a': 1, 'b': 2}, {'b': 9}, {'a': 5}}
	prev := Result{}
	for _, s := range steps {
		agg.Fold(s)
		for b, n := range prev {
			if agg[b] < n {
				t.Fatalf("value for %q shrank: %d -> %d", b, n, agg[b])
			}
		}
		prev = Result{}
		prev.Fold(agg)
	}
	if !reflect.DeepEqual(agg, Result{'a': 5, 'b': 9}) {
		t.Fatalf("final aggregate = %v", agg)
	}
}

func TestScanThenReduce(t *testing.T) {
	var per []Result
	for _, s := range []string{"aaa", "aabbbbcc", "aabb"} {
		r, err := Scan([]byte(s), Options{CaseSensitive: true})
		if err != nil {
			t.Fatalf("Scan(%q): %v", s, err)
		}
		per = append(per, r)
	}
	got := Reduce(per)
	if !reflect.DeepEqual(got, Result{'a': 3, 'b': 4}) {
		t.Fatalf("end-to-end aggregate = %v", got)
	}
}
