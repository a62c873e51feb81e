package merge

import (
	"cmp"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/loser"
)

// Tournament merges the sorted sequences in heads with a loser tree. Equal
// values are emitted in ascending index order, so the output matches Heap
// and Divide node for node. It takes ownership of every sequence; each slot
// of heads is nil when Tournament returns.
//
// Every sequence must be acyclic and non-decreasing; otherwise the result is
// undefined.
func Tournament[E cmp.Ordered](heads []*list.Node[E]) *list.Node[E] {
	var sentinel list.Node[E]
	tail := &sentinel
	for n := range loser.New(heads).All() {
		tail.Next = n
		tail = n
	}
	return sentinel.Next
}
