// Package loser is a tournament tree over the heads of singly-linked
// sequences, adapted from Bryan Boreham's go-loser
// (https://github.com/bboreham/go-loser).
package loser

import (
	"cmp"
	"iter"

	"github.com/davidvella/kmerge/list"
)

// New builds a tree over heads. It takes ownership of every sequence and
// clears the caller's slots.
func New[E cmp.Ordered](heads []*list.Node[E]) *Tree[E] {
	t := Tree[E]{
		nodes: make([]node, len(heads)*2),
		heads: make([]*list.Node[E], len(heads)),
	}
	for i := range heads {
		t.heads[i], heads[i] = heads[i], nil
	}
	if len(heads) > 0 {
		t.initialize()
	}
	return &t
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
// Leaf M+i plays with the current head of sequence i.
type Tree[E cmp.Ordered] struct {
	nodes []node
	heads []*list.Node[E]
}

type node struct {
	index int // This is the loser for all nodes except the 0th, where it is the winner.
}

// Len returns the number of sequences the tree was built over.
func (t *Tree[E]) Len() int {
	return len(t.heads)
}

// Empty reports whether every sequence has been drained.
func (t *Tree[E]) Empty() bool {
	return len(t.heads) == 0 || t.head(t.nodes[0].index) == nil
}

// Pop detaches and returns the smallest current head, or nil once the tree
// is empty. Equal values come out in ascending sequence order.
func (t *Tree[E]) Pop() *list.Node[E] {
	if t.Empty() {
		return nil
	}
	winner := t.nodes[0].index
	src := winner - len(t.heads)
	n := t.heads[src]
	t.heads[src] = n.Next
	n.Next = nil
	t.replayGames(winner)
	return n
}

// All yields detached nodes in merged order until the tree is empty.
func (t *Tree[E]) All() iter.Seq[*list.Node[E]] {
	return func(yield func(*list.Node[E]) bool) {
		for !t.Empty() {
			if !yield(t.Pop()) {
				return
			}
		}
	}
}

func (t *Tree[E]) head(pos int) *list.Node[E] {
	return t.heads[pos-len(t.heads)]
}

// beats reports whether leaf a wins against leaf b. A drained leaf loses to
// every live one; equal values go to the leaf with the lower position.
func (t *Tree[E]) beats(a, b int) bool {
	ha, hb := t.head(a), t.head(b)
	switch {
	case ha == nil:
		return false
	case hb == nil:
		return true
	}
	if c := cmp.Compare(ha.Value, hb.Value); c != 0 {
		return c < 0
	}
	return a < b
}

func (t *Tree[E]) initialize() {
	t.nodes[0].index = t.playGame(1)
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	nodes := t.nodes
	if pos >= len(nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	var loser, winner int
	if t.beats(left, right) {
		loser, winner = right, left
	} else {
		loser, winner = left, right
	}
	nodes[pos].index = loser
	return winner
}

// Starting at pos, which is a winner, re-consider all values up to the root.
func (t *Tree[E]) replayGames(pos int) {
	nodes := t.nodes
	for n := parent(pos); n != 0; n = parent(n) {
		node := &nodes[n]
		if t.beats(node.index, pos) {
			// Record pos as the loser here, and the old loser is the new winner.
			node.index, pos = pos, node.index
		}
	}
	// pos is now the winner; store it in node 0.
	nodes[0].index = pos
}

func parent(i int) int { return i >> 1 }
