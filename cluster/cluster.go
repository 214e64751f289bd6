package cluster

import (
	"sort"

	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/pq"
	"github.com/katalvlaran/junction/point"
)

// Policy names one of the two clustering strategies.
type Policy string

const (
	// PolicyBounded selects Bounded (merge budget, top-K product).
	PolicyBounded Policy = "bounded"
	// PolicyCritical selects Critical (edge that completes the forest).
	PolicyCritical Policy = "critical"
)

// NewQueue loads every edge of the complete graph over points into a
// min-priority queue keyed by distance, ties broken by edge.Less.
func NewQueue(points []point.Point) *pq.Queue[edge.Edge, uint64] {
	q := pq.New(edge.Key, edge.Less)
	q.Init(edge.Complete(points))

	return q
}

// Solve runs the selected policy and returns only its numeric answer.
//
//   - PolicyBounded:  Bounded(points, opts...).Product
//   - PolicyCritical: Critical(points, opts...).Answer
//   - anything else:  ErrInvalidOption
func Solve(points []point.Point, policy Policy, opts ...Option) (uint64, error) {
	switch policy {
	case PolicyBounded:
		res, err := Bounded(points, opts...)
		return res.Product, err
	case PolicyCritical:
		res, err := Critical(points, opts...)
		return res.Answer, err
	default:
		return 0, errors.Wrapf(ErrInvalidOption, "unknown policy %q", policy)
	}
}

// Groups partitions the indices of f by component, largest first; equal
// sizes are ordered by their smallest member.
func Groups(f *dsu.Forest) []mapset.Set[int] {
	byRoot := make(map[int]mapset.Set[int], f.Count())
	for x := 0; x < f.Len(); x++ {
		r := f.Find(x)
		s, ok := byRoot[r]
		if !ok {
			s = mapset.NewThreadUnsafeSet[int]()
			byRoot[r] = s
		}
		s.Add(x)
	}

	type group struct {
		members mapset.Set[int]
		first   int
	}
	gs := make([]group, 0, len(byRoot))
	for _, s := range byRoot {
		members := s.ToSlice()
		sort.Ints(members)
		gs = append(gs, group{members: s, first: members[0]})
	}
	sort.Slice(gs, func(i, j int) bool {
		if ci, cj := gs[i].members.Cardinality(), gs[j].members.Cardinality(); ci != cj {
			return ci > cj
		}
		return gs[i].first < gs[j].first
	})

	out := make([]mapset.Set[int], len(gs))
	for i, g := range gs {
		out[i] = g.members
	}

	return out
}
