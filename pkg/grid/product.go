package grid

// Product walks the Cartesian product of lists in lexicographic order,
// the last list varying fastest. Walking stops when fn returns false.
// An empty lists slice yields a single empty tuple.
func Product(lists [][]string, fn func(tuple []string) bool) {
	for _, l := range lists {
		if len(l) == 0 {
			return
		}
	}
	indices := make([]int, len(lists))
	tuple := make([]string, len(lists))
	product(lists, indices, tuple, 0, fn)
}

func product(lists [][]string, indices []int, tuple []string, depth int, fn func([]string) bool) bool {
	if depth == len(lists) {
		for i, idx := range indices {
			tuple[i] = lists[i][idx]
		}
		return fn(append([]string(nil), tuple...))
	}

	for i := range lists[depth] {
		indices[depth] = i
		if !product(lists, indices, tuple, depth+1, fn) {
			return false
		}
	}
	return true
}
