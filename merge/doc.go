// Package merge combines sorted singly-linked sequences without copying
// nodes.
//
// Two merges a pair of sequences. The k-way strategies merge any number of
// them and agree node for node on their output:
//   - Heap keeps a min-priority queue over the current heads.
//   - Divide merges halves of the index range recursively with Two.
//   - Tournament drains a loser tree over the current heads.
//
// All of them are stable. Equal values keep their order within a source,
// and across sources they come out in ascending source index (for Two, a
// before b).
//
// Ownership moves into every merge. The k-way strategies clear each slot of
// the slice they are given, and the returned head is the only way to reach
// the nodes afterwards. Inputs must be acyclic and non-decreasing; the
// strategies do not check this, see list.Validate.
//
// Basic usage:
//
//	heads := []*list.Node[int]{
//	    list.New(1, 4, 5),
//	    list.New(1, 3, 4),
//	    list.New(2, 6),
//	}
//	merged := merge.Heap(heads)
//	fmt.Println(list.Values(merged)) // [1 1 2 3 4 4 5 6]
//
// Sorted applies the same ordering to iter.Seq sources and pulls them
// lazily.
package merge
