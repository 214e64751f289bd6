package edge

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/junction/point"
)

// Edge joins two parsed points. I < J are their indices in parse order,
// A = points[I] and B = points[J]. Edges are values and are never mutated.
type Edge struct {
	Distance uint64
	I, J     int
	A, B     point.Point
}

// Count returns the number of edges of the complete graph on n points, n·(n−1)/2.
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return combin.Binomial(n, 2)
}

// Complete builds every unordered pair of points as an Edge.
//
// Pairs are enumerated in lexicographic index order
// (0,1), (0,2), …, (0,n-1), (1,2), …, so I < J always holds and no pair
// or self-edge appears twice. Fewer than two points yield nil.
//
// Complexity: O(N²) time and memory.
func Complete(points []point.Point) []Edge {
	n := len(points)
	if n < 2 {
		return nil
	}

	edges := make([]Edge, 0, Count(n))
	gen := combin.NewCombinationGenerator(n, 2)
	pair := make([]int, 2)
	for gen.Next() {
		gen.Combination(pair)
		i, j := pair[0], pair[1]
		edges = append(edges, Edge{
			Distance: Distance(points[i], points[j]),
			I:        i,
			J:        j,
			A:        points[i],
			B:        points[j],
		})
	}

	return edges
}

// Key is the priority of e in the clustering queue: its distance alone.
func Key(e Edge) uint64 { return e.Distance }

// Less is the total order over edges: distance first, then the lower
// endpoint index, then the higher one. The clustering queue uses it to
// break ties between equal keys so runs are reproducible.
func Less(a, b Edge) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	if a.I != b.I {
		return a.I < b.I
	}

	return a.J < b.J
}
