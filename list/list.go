package list

import (
	"cmp"
	"iter"
)

// Node is one element of a sequence.
type Node[E cmp.Ordered] struct {
	Value E
	Next  *Node[E]
}

// New builds a sequence holding values in order and returns its head.
func New[E cmp.Ordered](values ...E) *Node[E] {
	return FromSlice(values)
}

// FromSlice builds a sequence from values and returns its head, or nil when
// values is empty.
func FromSlice[E cmp.Ordered](values []E) *Node[E] {
	var head *Node[E]
	for i := len(values) - 1; i >= 0; i-- {
		head = &Node[E]{Value: values[i], Next: head}
	}
	return head
}

// Values copies the values of the sequence into a new slice.
func Values[E cmp.Ordered](head *Node[E]) []E {
	out := make([]E, 0, Len(head))
	for v := range All(head) {
		out = append(out, v)
	}
	return out
}

// Len counts the nodes reachable from head.
func Len[E cmp.Ordered](head *Node[E]) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}
	return n
}

// All yields the values of the sequence from head to tail.
func All[E cmp.Ordered](head *Node[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Nodes yields every node of the sequence. The successor is read before the
// node is yielded, so the consumer may relink the yielded node.
func Nodes[E cmp.Ordered](head *Node[E]) iter.Seq[*Node[E]] {
	return func(yield func(*Node[E]) bool) {
		for n := head; n != nil; {
			next := n.Next
			if !yield(n) {
				return
			}
			n = next
		}
	}
}

// Pop detaches the head of the sequence and returns it together with the
// remainder. The detached node's Next is cleared.
func Pop[E cmp.Ordered](head *Node[E]) (node, rest *Node[E]) {
	if head == nil {
		return nil, nil
	}
	rest = head.Next
	head.Next = nil
	return head, rest
}
