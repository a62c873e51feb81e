package merge

import (
	"cmp"
	"iter"

	"github.com/davidvella/kmerge/priority"
)

// Sorted combines sorted iterators into a single sorted iterator. Sources
// are pulled lazily, one value at a time, and ties go to the source with the
// lower index. Every pull iterator is stopped when the returned sequence
// finishes or the consumer stops early.
func Sorted[E cmp.Ordered](seqs ...iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		nexts := make([]func() (E, bool), len(seqs))
		pq := priority.NewQueue(before[E], len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			//nolint:gocritic // is not a leak.
			defer stop()
			nexts[i] = next
			if v, ok := next(); ok {
				pq.Set(i, head[E]{value: v, src: i})
			}
		}

		for {
			src, h, ok := pq.Pop()
			if !ok || !yield(h.value) {
				return
			}
			if v, ok := nexts[src](); ok {
				pq.Set(src, head[E]{value: v, src: src})
			}
		}
	}
}
