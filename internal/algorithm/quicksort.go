package algorithm

// QuickSort sorts s in place with a partition-exchange sort. The last element
// of each range is the pivot and every element x with cmp(x, pivot) <= 0 ends
// up before it. The sort is not stable.
func QuickSort[T any](s []T, cmp func(a, b T) int) {
	for len(s) > 1 {
		p := partition(s, cmp)
		left, right := s[:p], s[p+1:]

		// Recurse into the smaller side and loop on the larger one so the
		// stack stays O(log n) even on already ordered input.
		if len(left) < len(right) {
			QuickSort(left, cmp)
			s = right
		} else {
			QuickSort(right, cmp)
			s = left
		}
	}
}

// partition places the pivot (last element) at its final index and returns it
func partition[T any](s []T, cmp func(a, b T) int) int {
	hi := len(s) - 1
	pivot := s[hi]

	i := 0
	for j := 0; j < hi; j++ {
		if cmp(s[j], pivot) <= 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}
