package merge_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/kmerge/list"
	"github.com/davidvella/kmerge/merge"
)

var strategies = []struct {
	name string
	fn   merge.Func[int]
}{
	{name: "heap", fn: merge.Heap[int]},
	{name: "divide", fn: merge.Divide[int]},
	{name: "tournament", fn: merge.Tournament[int]},
}

func build(values [][]int) []*list.Node[int] {
	heads := make([]*list.Node[int], len(values))
	for i, v := range values {
		heads[i] = list.FromSlice(v)
	}
	return heads
}

func identities(head *list.Node[int]) []*list.Node[int] {
	var out []*list.Node[int]
	for n := range list.Nodes(head) {
		out = append(out, n)
	}
	return out
}

// entry places one input node in the stable order: value, then source,
// then position inside the source.
type entry struct {
	value int
	src   int
	pos   int
	node  *list.Node[int]
}

// stableOrder computes the expected output independently of the engine by
// loading every node into a btree keyed on (value, source, position).
func stableOrder(heads []*list.Node[int]) []*list.Node[int] {
	tree := btree.NewG(8, func(a, b entry) bool {
		if a.value != b.value {
			return a.value < b.value
		}
		if a.src != b.src {
			return a.src < b.src
		}
		return a.pos < b.pos
	})
	for src, h := range heads {
		pos := 0
		for n := h; n != nil; n = n.Next {
			tree.ReplaceOrInsert(entry{value: n.Value, src: src, pos: pos, node: n})
			pos++
		}
	}
	out := make([]*list.Node[int], 0, tree.Len())
	tree.Ascend(func(e entry) bool {
		out = append(out, e.node)
		return true
	})
	return out
}

func randomSorted(rng *rand.Rand, k, maxLen, maxValue int) [][]int {
	out := make([][]int, k)
	for i := range out {
		n := rng.Intn(maxLen + 1)
		v := 0
		for j := 0; j < n; j++ {
			v += rng.Intn(maxValue + 1)
			out[i] = append(out[i], v)
		}
	}
	return out
}

func TestTwo(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{name: "both empty", want: []int{}},
		{name: "first empty", b: []int{0}, want: []int{0}},
		{name: "second empty", a: []int{0}, want: []int{0}},
		{name: "interleaved", a: []int{1, 3, 5}, b: []int{2, 4, 6}, want: []int{1, 2, 3, 4, 5, 6}},
		{name: "disjoint", a: []int{7, 8}, b: []int{1, 2}, want: []int{1, 2, 7, 8}},
		{name: "duplicates", a: []int{1, 2, 4}, b: []int{1, 3, 4}, want: []int{1, 1, 2, 3, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merge.Two(list.FromSlice(tt.a), list.FromSlice(tt.b))
			assert.Equal(t, tt.want, list.Values(got))
		})
	}
}

func TestTwoTakesFirstOnTies(t *testing.T) {
	a := list.New(1, 2, 2)
	b := list.New(2, 2, 3)
	an, bn := identities(a), identities(b)

	got := identities(merge.Two(a, b))
	want := []*list.Node[int]{an[0], an[1], an[2], bn[0], bn[1], bn[2]}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Same(t, want[i], got[i], "position %d", i)
	}
}

func TestKWay(t *testing.T) {
	tests := []struct {
		name  string
		input [][]int
		want  []int
	}{
		{name: "no sequences", input: nil, want: []int{}},
		{name: "empty slice", input: [][]int{}, want: []int{}},
		{name: "single empty", input: [][]int{{}}, want: []int{}},
		{name: "all empty", input: [][]int{{}, {}, {}}, want: []int{}},
		{name: "empty and zero", input: [][]int{{}, {0}}, want: []int{0}},
		{name: "single", input: [][]int{{1, 2, 3}}, want: []int{1, 2, 3}},
		{
			name:  "three sequences",
			input: [][]int{{1, 4, 5}, {1, 3, 4}, {2, 6}},
			want:  []int{1, 1, 2, 3, 4, 4, 5, 6},
		},
		{
			name:  "negative values",
			input: [][]int{{-5, 0}, {-7, -1, 10}, {}, {3}},
			want:  []int{-7, -5, -1, 0, 3, 10},
		},
	}

	for _, s := range strategies {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				heads := build(tt.input)
				got := s.fn(heads)
				assert.Equal(t, tt.want, list.Values(got))
				for i, h := range heads {
					assert.Nil(t, h, "slot %d still owns nodes", i)
				}
			})
		}
	}
}

func TestKWayStability(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			heads := build([][]int{{1, 1, 2}, {0, 1}, {1, 2, 2}, {1}})
			want := stableOrder(heads)

			got := identities(s.fn(heads))
			require.Len(t, got, len(want))
			for i := range want {
				assert.Same(t, want[i], got[i], "position %d", i)
			}
		})
	}
}

func TestKWayMatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		k := rng.Intn(12)
		values := randomSorted(rng, k, 10, 3)

		for _, s := range strategies {
			heads := build(values)
			want := stableOrder(heads)

			got := identities(s.fn(heads))
			require.Len(t, got, len(want), "%s round %d", s.name, round)
			for i := range want {
				require.Same(t, want[i], got[i], "%s round %d position %d", s.name, round, i)
			}
			if len(got) > 0 {
				assert.Nil(t, got[len(got)-1].Next)
			}
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 100; round++ {
		values := randomSorted(rng, 1+rng.Intn(20), 15, 2)

		// The same nodes are remembered by (source, position) so that each
		// strategy can run on a fresh copy and still be compared node for node.
		var orders [][][2]int
		for _, s := range strategies {
			heads := build(values)
			where := make(map[*list.Node[int]][2]int)
			for src, h := range heads {
				pos := 0
				for n := h; n != nil; n = n.Next {
					where[n] = [2]int{src, pos}
					pos++
				}
			}
			var order [][2]int
			for n := range list.Nodes(s.fn(heads)) {
				order = append(order, where[n])
			}
			orders = append(orders, order)
		}
		for i := 1; i < len(orders); i++ {
			require.Equal(t, orders[0], orders[i], "round %d: %s disagrees with %s", round, strategies[i].name, strategies[0].name)
		}
	}
}

func BenchmarkKWay(b *testing.B) {
	for _, k := range []int{2, 16, 256} {
		rng := rand.New(rand.NewSource(1))
		values := randomSorted(rng, k, 64, 10)
		for _, s := range strategies {
			b.Run(fmt.Sprintf("%s_k%d", s.name, k), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					heads := build(values)
					b.StartTimer()
					_ = s.fn(heads)
				}
			})
		}
	}
}
