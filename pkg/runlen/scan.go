package runlen

// scanLinear walks seq once, closing out a run whenever the character
// changes and keeping the best length seen per character. seq must be
// non-empty and already normalized.
func scanLinear(seq []byte) Result {
	longest := make(map[byte]int, 8)
	cur := seq[0]
	count := 1
	for _, b := range seq[1:] {
		if b == cur {
			count++
			continue
		}
		if count > longest[cur] {
			longest[cur] = count
		}
		cur = b
		count = 1
	}
	if count > longest[cur] {
		longest[cur] = count
	}

	max := 0
	for _, n := range longest {
		if n > max {
			max = n
		}
	}
	out := make(Result, 2)
	for b, n := range longest {
		if n == max {
			out[b] = n
		}
	}
	return out
}
