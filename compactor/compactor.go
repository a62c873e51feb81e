package compactor

import (
	"cmp"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/loser"
)

// Compact merges the sorted sequences in heads with a loser tree and keeps
// only the first node of every run of equal values. Because the tree breaks
// ties on sequence order, the surviving node comes from the lowest-indexed
// sequence that held the value. Dropped nodes are unlinked. Compact takes
// ownership of every sequence and clears the caller's slots.
func Compact[E cmp.Ordered](heads ...*list.Node[E]) *list.Node[E] {
	if len(heads) == 0 {
		return nil
	}

	var (
		lt       = loser.New(heads)
		sentinel list.Node[E]
		last     = &sentinel
		done     bool
	)

	for current := range lt.All() {
		if done && current.Value == last.Value {
			continue
		}
		last.Next = current
		last = current
		done = true
	}

	return sentinel.Next
}
