// Package priority implements a min-priority queue whose keys are dense
// integer indices, such as the position of a source sequence in a k-way
// merge. Each key holds at most one value at a time, and the queue can be
// re-prioritised by key.
//
// The queue is a binary heap paired with a position slice, so key lookups
// are O(1) and the queue needs O(capacity) memory regardless of how many
// keys are live.
//
// Key features:
//   - Generic over the value type
//   - O(log n) insertion, update and removal
//   - O(1) peek and key lookup
//
// Basic usage:
//
//	// Order by value, then by key, so equal values pop in key order.
//	type head struct {
//	    value int
//	    src   int
//	}
//	pq := priority.NewQueue(func(a, b head) bool {
//	    if a.value != b.value {
//	        return a.value < b.value
//	    }
//	    return a.src < b.src
//	}, 3)
//
//	pq.Set(0, head{5, 0})
//	pq.Set(1, head{3, 1})
//	pq.Set(2, head{3, 2})
//
//	key, value, ok := pq.Pop() // 1, {3 1}, true
//
// The less function should return true if a has higher priority than b.
// Keys outside [0, capacity) are programming errors and panic.
package priority
