package priority

import "fmt"

// item represents an entry in the queue.
type item[V any] struct {
	key   int
	value V
}

// Queue implements a min-priority queue over dense integer keys using a
// binary heap. Keys are source indices in [0, capacity).
type Queue[V any] struct {
	items []item[V]
	pos   []int             // pos[key] is the heap index of key, or -1.
	lessF func(a, b V) bool // returns true if a has higher priority than b
}

// NewQueue creates a queue for keys in [0, capacity) ordered by less.
func NewQueue[V any](less func(a, b V) bool, capacity int) *Queue[V] {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &Queue[V]{
		items: make([]item[V], 0, capacity),
		pos:   pos,
		lessF: less,
	}
}

// Len returns the number of items in the queue.
func (pq *Queue[V]) Len() int {
	return len(pq.items)
}

// Get returns the value stored for key.
func (pq *Queue[V]) Get(key int) (V, bool) {
	pq.check(key)
	i := pq.pos[key]
	if i < 0 {
		var zero V
		return zero, false
	}
	return pq.items[i].value, true
}

// Set adds a new key or updates an existing key's value.
func (pq *Queue[V]) Set(key int, value V) {
	pq.check(key)
	if i := pq.pos[key]; i >= 0 {
		old := pq.items[i].value
		pq.items[i].value = value
		if pq.lessF(value, old) {
			pq.up(i)
		} else {
			pq.down(i)
		}
		return
	}
	pq.items = append(pq.items, item[V]{key: key, value: value})
	pq.pos[key] = len(pq.items) - 1
	pq.up(len(pq.items) - 1)
}

// Remove removes the given key from the queue.
func (pq *Queue[V]) Remove(key int) {
	pq.check(key)
	idx := pq.pos[key]
	if idx < 0 {
		return
	}
	lastIdx := len(pq.items) - 1
	if idx != lastIdx {
		pq.swap(idx, lastIdx)
	}
	pq.items = pq.items[:lastIdx]
	pq.pos[key] = -1
	if idx < lastIdx {
		pq.down(idx)
		pq.up(idx)
	}
}

// Pop removes and returns the highest priority item.
func (pq *Queue[V]) Pop() (key int, value V, exists bool) {
	if len(pq.items) == 0 {
		return -1, value, false
	}
	top := pq.items[0]
	pq.Remove(top.key)
	return top.key, top.value, true
}

// Peek returns the highest priority item without removing it.
func (pq *Queue[V]) Peek() (key int, value V, exists bool) {
	if len(pq.items) == 0 {
		return -1, value, false
	}
	return pq.items[0].key, pq.items[0].value, true
}

func (pq *Queue[V]) check(key int) {
	if key < 0 || key >= len(pq.pos) {
		panic(fmt.Sprintf("priority: key %d out of range [0, %d)", key, len(pq.pos)))
	}
}

// swap swaps items at index i and j.
func (pq *Queue[V]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.pos[pq.items[i].key] = i
	pq.pos[pq.items[j].key] = j
}

// less compares items at index i and j.
func (pq *Queue[V]) less(i, j int) bool {
	return pq.lessF(pq.items[i].value, pq.items[j].value)
}

// up moves the element at index i up to its proper position.
func (pq *Queue[V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (pq *Queue[V]) down(i int) {
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(pq.items) && pq.less(left, smallest) {
			smallest = left
		}
		if right < len(pq.items) && pq.less(right, smallest) {
			smallest = right
		}

		if smallest == i {
			break
		}

		pq.swap(i, smallest)
		i = smallest
	}
}
