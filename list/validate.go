package list

import (
	"cmp"
	"errors"
	"fmt"
)

var (
	// ErrUnsorted is returned by Validate when a value is smaller than its
	// predecessor.
	ErrUnsorted = errors.New("list: sequence is not sorted")
	// ErrCycle is returned by Validate when the sequence never reaches nil.
	ErrCycle = errors.New("list: sequence contains a cycle")
)

// Validate reports whether the sequence satisfies the merge preconditions:
// it must be acyclic and non-decreasing. Cycles are found with a slow/fast
// traversal, so Validate terminates on any input.
func Validate[E cmp.Ordered](head *Node[E]) error {
	if HasCycle(head) {
		return ErrCycle
	}
	pos := 0
	for n := head; n != nil && n.Next != nil; n = n.Next {
		if cmp.Less(n.Next.Value, n.Value) {
			return fmt.Errorf("%w: position %d holds %v after %v", ErrUnsorted, pos+1, n.Next.Value, n.Value)
		}
		pos++
	}
	return nil
}

// HasCycle reports whether following Next from head ever revisits a node.
func HasCycle[E cmp.Ordered](head *Node[E]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}
	return false
}
