// Package loser implements a tournament tree (also known as a loser tree) for
// merging multiple sorted linked sequences. This implementation is based on
// the work by Bryan Boreham (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree structure where each internal node holds the
// "loser" of a comparison between its children, and the root holds the
// overall "winner". Advancing the winner only replays the games on the path
// from its leaf to the root, so each emitted node costs O(log k) comparisons
// with no heap sifting.
//
// Key features:
//   - Generic over any ordered value type
//   - Works on list heads directly: nodes are detached, never copied
//   - Deterministic ties: equal values leave in ascending sequence order
//   - Iterator-based draining via iter.Seq
//
// Basic usage:
//
//	heads := []*list.Node[int]{
//	    list.New(1, 3, 5),
//	    list.New(2, 4, 6),
//	    list.New(7, 8, 9),
//	}
//
//	// The tree takes ownership; heads is all nil afterwards.
//	tree := loser.New(heads)
//
//	for n := range tree.All() {
//	    fmt.Println(n.Value) // Will print: 1, 2, 3, 4, 5, 6, 7, 8, 9
//	}
//
// Implementation Details:
// The loser tree is implemented as a binary tree laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 is special, containing the current winner
//
// Leaf M+i stands for the current head of sequence i. A drained sequence has
// a nil head and loses every game, which replaces the maximum sentinel value
// a value-based tree would need.
package loser
