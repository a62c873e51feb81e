// Package compactor merges multiple sorted linked sequences into one while
// collapsing duplicate values. It uses a loser tree to merge the sequences
// and keeps the first node seen for each value.
//
// The compaction process:
//   - Merges multiple sorted sequences into a single sorted sequence
//   - Deduplicates equal values, keeping the node from the earliest sequence
//   - Relinks the surviving nodes; nothing is copied
//
// Basic usage:
//
//	newer := list.New(1, 2, 5)
//	older := list.New(1, 3, 5)
//
//	merged := compactor.Compact(newer, older)
//	fmt.Println(list.Values(merged)) // [1 2 3 5]
//
// Pass sequences in order of precedence: when two sequences hold the same
// value, the node from the one passed first survives. The dropped nodes are
// detached from the result and left to the garbage collector.
package compactor
