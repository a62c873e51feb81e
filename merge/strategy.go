package merge

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/davidvella/kmerge/list"
)

// ErrUnknownStrategy is returned by Lookup for names that are not registered.
var ErrUnknownStrategy = errors.New("merge: unknown strategy")

// Func is the shape shared by every k-way strategy.
type Func[E cmp.Ordered] func(heads []*list.Node[E]) *list.Node[E]

// Strategy names a k-way merge algorithm.
type Strategy string

const (
	// StrategyHeap selects Heap.
	StrategyHeap Strategy = "heap"
	// StrategyDivide selects Divide.
	StrategyDivide Strategy = "divide"
	// StrategyTournament selects Tournament.
	StrategyTournament Strategy = "tournament"
)

// Strategies returns every registered strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyHeap, StrategyDivide, StrategyTournament}
}

// Lookup parses name into a Strategy.
func Lookup(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStrategy, name)
}

// Resolve returns the implementation of s for element type E.
func Resolve[E cmp.Ordered](s Strategy) (Func[E], error) {
	switch s {
	case StrategyHeap:
		return Heap[E], nil
	case StrategyDivide:
		return Divide[E], nil
	case StrategyTournament:
		return Tournament[E], nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, string(s))
	}
}

func (s Strategy) String() string {
	return string(s)
}
