package merge

import (
	"cmp"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/priority"
)

// head is the queue entry for one source: its current head value and index.
type head[E cmp.Ordered] struct {
	value E
	src   int
}

// before orders heads by value, then by source index.
func before[E cmp.Ordered](a, b head[E]) bool {
	if c := cmp.Compare(a.value, b.value); c != 0 {
		return c < 0
	}
	return a.src < b.src
}

// Heap merges the sorted sequences in heads with a min-priority queue over
// their current heads. Equal values are emitted in ascending index order.
// It takes ownership of every sequence; each slot of heads is nil when Heap
// returns. O(N log k) time and O(k) extra space.
//
// Every sequence must be acyclic and non-decreasing; otherwise the result is
// undefined.
func Heap[E cmp.Ordered](heads []*list.Node[E]) *list.Node[E] {
	pq := priority.NewQueue(before[E], len(heads))
	for i, h := range heads {
		if h != nil {
			pq.Set(i, head[E]{value: h.Value, src: i})
		}
	}

	var sentinel list.Node[E]
	tail := &sentinel
	for {
		src, _, ok := pq.Pop()
		if !ok {
			break
		}
		n := heads[src]
		heads[src] = n.Next
		tail.Next = n
		tail = n
		if next := heads[src]; next != nil {
			pq.Set(src, head[E]{value: next.Value, src: src})
		}
	}
	tail.Next = nil
	return sentinel.Next
}
