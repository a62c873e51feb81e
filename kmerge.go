// Package kmerge merges k sorted singly-linked sequences into one, moving
// nodes instead of copying them. Merge is the configurable entry point; the
// algorithms themselves live in package merge and the node model in package
// list.
package kmerge

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/merge"
)

// Merge merges the sorted sequences in heads using the configured strategy
// and returns the merged head. Ownership of every sequence moves into Merge
// and each slot of heads is nil on success.
//
// With validation enabled, every input is checked first and the first
// failure is returned before any node is touched; heads is then left as it
// was. Without validation, unsorted or cyclic inputs are undefined behaviour.
func Merge[E cmp.Ordered](heads []*list.Node[E], opts ...Option) (*list.Node[E], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fn, err := merge.Resolve[E](o.strategy)
	if err != nil {
		return nil, err
	}

	if o.validate {
		for i, h := range heads {
			if err := list.Validate(h); err != nil {
				return nil, fmt.Errorf("kmerge: sequence %d: %w", i, err)
			}
		}
	}

	merged := fn(heads)
	if ce := o.logger.Check(zap.DebugLevel, "merged sequences"); ce != nil {
		ce.Write(
			zap.Stringer("strategy", o.strategy),
			zap.Int("k", len(heads)),
			zap.Int("nodes", list.Len(merged)),
		)
	}
	return merged, nil
}
