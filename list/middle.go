package list

import "cmp"

// Middle returns the structural middle of the sequence: the node at 0-based
// position floor(n/2), which for even n is the second of the two central
// nodes. It returns nil for the empty sequence. The sequence is not modified
// and the caller keeps ownership of every node.
func Middle[E cmp.Ordered](head *Node[E]) *Node[E] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		fast = fast.Next.Next
		slow = slow.Next
	}
	return slow
}
