package list

import "cmp"

// Reverse takes ownership of the sequence at head and returns the same nodes
// in reverse order. Only Next links change.
func Reverse[E cmp.Ordered](head *Node[E]) *Node[E] {
	var acc *Node[E]
	for head != nil {
		next := head.Next
		head.Next = acc
		acc = head
		head = next
	}
	return acc
}
