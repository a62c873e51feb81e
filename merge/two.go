package merge

import (
	"cmp"

	"github.com/davidvella/kmerge/list"
)

// Two merges the sorted sequences a and b and returns the merged head. It
// takes ownership of both inputs and allocates nothing: nodes are relinked
// behind a sentinel. On equal values the node from a comes first.
//
// Both inputs must be acyclic and non-decreasing; otherwise the result is
// undefined.
func Two[E cmp.Ordered](a, b *list.Node[E]) *list.Node[E] {
	var sentinel list.Node[E]
	tail := &sentinel
	for a != nil && b != nil {
		if cmp.Less(b.Value, a.Value) {
			tail.Next, b = b, b.Next
		} else {
			tail.Next, a = a, a.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}
	return sentinel.Next
}
