package merge

import (
	"cmp"

	"github.com/davidvella/kmerge/list"
)

// Divide merges the sorted sequences in heads by recursively merging the
// two halves of the index range and combining the results with Two, left
// half first. It takes ownership of every sequence; each slot of heads is
// nil when Divide returns. O(N log k) time, O(log k) recursion depth.
//
// Every sequence must be acyclic and non-decreasing; otherwise the result is
// undefined.
func Divide[E cmp.Ordered](heads []*list.Node[E]) *list.Node[E] {
	if len(heads) == 0 {
		return nil
	}
	return divide(heads, 0, len(heads)-1)
}

func divide[E cmp.Ordered](heads []*list.Node[E], s, e int) *list.Node[E] {
	if s == e {
		h := heads[s]
		heads[s] = nil
		return h
	}
	mid := (s + e) / 2
	lhs := divide(heads, s, mid)
	rhs := divide(heads, mid+1, e)
	return Two(lhs, rhs)
}
