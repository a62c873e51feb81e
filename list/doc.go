// Package list implements the singly-linked sequence model shared by every
// merge strategy in this module, together with the two single-sequence
// operations that live on the same ownership rules: locating the structural
// middle and reversing in place.
//
// A sequence is a chain of *Node values reachable from a head pointer and
// terminated by nil. A nil head is the empty sequence. Every node has exactly
// one owner: its predecessor, or the caller when it is a head. Operations
// that take ownership (Reverse here, and every merge in package merge) never
// allocate or copy nodes; they only rewrite Next links.
//
// Basic usage:
//
//	head := list.New(1, 2, 3, 4, 5, 6)
//
//	mid := list.Middle(head) // non-owning, head is untouched
//	fmt.Println(mid.Value)   // 4
//
//	head = list.Reverse(head) // head now owns 6 -> 5 -> ... -> 1
//	fmt.Println(list.Values(head))
//
// Preconditions:
//   - Sequences must be acyclic.
//   - Sequences handed to a merge must be non-decreasing.
//
// Neither is enforced by the operations themselves. Validate checks both and
// is meant for inputs that come from outside the program.
package list
