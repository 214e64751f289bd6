package dsu

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	f := New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Count())
	assert.False(t, f.AllConnected())

	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i))
		assert.Equal(t, 1, f.ComponentSize(i))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.Roots())
}

func TestNew_Single(t *testing.T) {
	f := New(1)
	assert.True(t, f.AllConnected())
	assert.Equal(t, []int{1}, f.Sizes())
}

// TestUnion_TwiceTrueThenFalse covers the basic success and no-op paths.
func TestUnion_TwiceTrueThenFalse(t *testing.T) {
	f := New(4)
	assert.True(t, f.Union(1, 3))
	assert.False(t, f.Union(1, 3))
	assert.False(t, f.Union(3, 1))

	assert.True(t, f.Connected(1, 3))
	assert.False(t, f.Connected(0, 1))
	assert.Equal(t, 2, f.ComponentSize(3))
	assert.Equal(t, 3, f.Count())
}

// TestUnion_NoOpLeavesStateUnchanged compares the whole forest before and
// after a redundant union.
func TestUnion_NoOpLeavesStateUnchanged(t *testing.T) {
	f := New(6)
	f.Union(0, 1)
	f.Union(1, 2)
	f.Union(4, 5)
	// Compress everything first so the redundant Find calls have nothing left to rewrite.
	for i := 0; i < f.Len(); i++ {
		f.Find(i)
	}

	parent := append([]int(nil), f.parent...)
	size := append([]int(nil), f.size...)
	count := f.count

	require.False(t, f.Union(2, 0))
	assert.Equal(t, parent, f.parent)
	assert.Equal(t, size, f.size)
	assert.Equal(t, count, f.count)
}

// TestUnion_BySize hangs the smaller tree under the larger root.
func TestUnion_BySize(t *testing.T) {
	f := New(5)
	f.Union(0, 1)
	f.Union(0, 2)
	big := f.Find(0)

	f.Union(3, 0)
	assert.Equal(t, big, f.Find(3))
	assert.Equal(t, 4, f.ComponentSize(3))

	// Equal sizes: b's root goes under a's.
	g := New(2)
	g.Union(1, 0)
	assert.Equal(t, 1, g.Find(0))
}

// TestFind_PathCompression builds a chain by hand and checks every node
// points at the root after one Find.
func TestFind_PathCompression(t *testing.T) {
	f := New(5)
	// 4 → 3 → 2 → 1 → 0
	for i := 1; i < 5; i++ {
		f.parent[i] = i - 1
	}
	f.size[0] = 5
	f.count = 1

	assert.Equal(t, 0, f.Find(4))
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, f.parent[i], "parent[%d]", i)
	}
}

// TestFind_DeepChain must not depend on recursion depth.
func TestFind_DeepChain(t *testing.T) {
	const n = 1 << 20
	f := New(n)
	for i := 1; i < n; i++ {
		f.parent[i] = i - 1
	}
	assert.Equal(t, 0, f.Find(n-1))
	assert.Equal(t, 0, f.parent[n/2])
}

func TestSizesAndRoots(t *testing.T) {
	f := New(7)
	f.Union(0, 1)
	f.Union(2, 3)
	f.Union(3, 4)
	f.Union(5, 6)

	assert.Equal(t, []int{3, 2, 2}, f.Sizes())
	assert.Len(t, f.Roots(), 3)
	for _, r := range f.Roots() {
		assert.Equal(t, r, f.Find(r))
	}
}

func TestAllConnected(t *testing.T) {
	f := New(4)
	f.Union(0, 1)
	f.Union(2, 3)
	assert.False(t, f.AllConnected())
	assert.True(t, f.Union(1, 2))
	assert.True(t, f.AllConnected())
	assert.Equal(t, []int{4}, f.Sizes())
}

func TestOutOfRangePanics(t *testing.T) {
	f := New(3)
	assert.Panics(t, func() { f.Find(3) })
	assert.Panics(t, func() { f.Union(-1, 0) })
}

// TestForest_Invariants drives random union sequences and checks the
// package invariants after every step.
func TestForest_Invariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const n = 24
	idx := gen.IntRange(0, n-1)

	properties.Property("find idempotent, sizes sum to n, count tracks merges", prop.ForAll(
		func(as, bs []int) bool {
			f := New(n)
			steps := len(as)
			if len(bs) < steps {
				steps = len(bs)
			}
			for s := 0; s < steps; s++ {
				before := f.Count()
				joined := f.Connected(as[s], bs[s])
				ok := f.Union(as[s], bs[s])
				if ok == joined {
					return false
				}
				if ok && f.Count() != before-1 || !ok && f.Count() != before {
					return false
				}
				if !checkInvariants(f) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(idx),
		gen.SliceOf(idx),
	))

	properties.TestingRun(t)
}

func checkInvariants(f *Forest) bool {
	members := make(map[int]int)
	for x := 0; x < f.Len(); x++ {
		r := f.Find(x)
		if f.Find(r) != r {
			return false
		}
		members[r]++
	}
	if len(members) != f.Count() {
		return false
	}
	total := 0
	for r, m := range members {
		if f.ComponentSize(r) != m {
			return false
		}
		total += f.ComponentSize(r)
	}
	return total == f.Len()
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 14
	for i := 0; i < b.N; i++ {
		f := New(n)
		for x := 1; x < n; x++ {
			f.Union(x, (x*7919)%n)
		}
		for x := 0; x < n; x++ {
			f.Find(x)
		}
	}
}
