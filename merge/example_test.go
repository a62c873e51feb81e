package merge_test

import (
	"fmt"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/merge"
)

func ExampleTwo() {
	merged := merge.Two(nil, list.New(0))
	fmt.Println(list.Values(merged))

	// Output: [0]
}

func ExampleHeap() {
	heads := []*list.Node[int]{
		list.New(1, 4, 5),
		list.New(1, 3, 4),
		list.New(2, 6),
	}
	merged := merge.Heap(heads)
	fmt.Println(list.Values(merged))
	fmt.Println(heads[0] == nil, heads[1] == nil, heads[2] == nil)

	// Output:
	// [1 1 2 3 4 4 5 6]
	// true true true
}

func ExampleDivide() {
	heads := []*list.Node[int]{
		list.New(1, 4, 5),
		list.New(1, 3, 4),
		list.New(2, 6),
	}
	fmt.Println(list.Values(merge.Divide(heads)))
	fmt.Println(list.Values(merge.Divide[int](nil)))

	// Output:
	// [1 1 2 3 4 4 5 6]
	// []
}
