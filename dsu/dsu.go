// Package dsu implements a disjoint-set forest (union-find) over the
// indices 0..n-1 with union by size, full path compression and a live
// count of components.
//
// Invariants, after any sequence of operations:
//   - Find(Find(x)) == Find(x);
//   - ComponentSize(r) of a root r equals the number of indices whose Find is r;
//   - the component sizes of all roots sum to Len();
//   - Count drops by exactly one per successful Union and never grows.
//
// Indices outside [0, Len()) are programming errors and panic.
package dsu

import "sort"

// Forest is a disjoint-set forest. It is not safe for concurrent use.
type Forest struct {
	parent []int // parent[i] == i marks a root
	size   []int // valid at roots only
	count  int
}

// New returns a forest of n singleton components.
func New(n int) *Forest {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &Forest{parent: parent, size: size, count: n}
}

// Find returns the root of x's component.
//
// The walk is iterative: a first pass climbs to the root, a second pass
// repoints every index on the path directly at it.
func (f *Forest) Find(x int) int {
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the components of a and b and reports whether anything
// changed. When they already share a root it returns false and leaves the
// forest untouched. Otherwise the root of the smaller component is hung
// under the root of the larger; on equal sizes b's root goes under a's.
func (f *Forest) Union(a, b int) bool {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return false
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.count--

	return true
}

// Connected reports whether a and b are in the same component.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }

// ComponentSize returns the number of indices in x's component.
func (f *Forest) ComponentSize(x int) int { return f.size[f.Find(x)] }

// AllConnected reports whether exactly one component remains.
func (f *Forest) AllConnected() bool { return f.count == 1 }

// Count returns the number of components.
func (f *Forest) Count() int { return f.count }

// Len returns the number of indices in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Roots returns the current roots in ascending order.
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			roots = append(roots, i)
		}
	}

	return roots
}

// Sizes returns the size of every component, largest first.
func (f *Forest) Sizes() []int {
	sizes := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			sizes = append(sizes, f.size[i])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}
