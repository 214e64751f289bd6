package cluster

import (
	"github.com/cockroachdb/errors"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/point"
)

// BoundedResult reports a Bounded run.
type BoundedResult struct {
	Product  uint64            `json:"product" yaml:"product"`   // product of the TopK largest sizes
	Sizes    []int             `json:"sizes" yaml:"sizes"`       // every component size, largest first
	Merges   int               `json:"merges" yaml:"merges"`     // successful unions
	Consumed int               `json:"consumed" yaml:"consumed"` // edges popped, redundant ones included
	Groups   []mapset.Set[int] `json:"-" yaml:"-"`               // point indices per component, largest first
}

// Bounded clusters points under a merge budget and multiplies the sizes of
// the TopK largest components that result.
//
// Steps:
//  1. Resolve options; reject a negative budget or TopK < 1.
//  2. Queue all N·(N−1)/2 edges by distance; start N singleton components.
//  3. While budget remains and the queue is not empty: pop the nearest
//     edge and union its endpoints. The union always consumes the edge;
//     it spends budget when it merged (CountMerges) or always (CountPairs).
//  4. Collect the size of every remaining component, largest first.
//  5. Fewer than TopK components → ErrInsufficientComponents.
//  6. Return the product of the first TopK sizes.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Bounded(points []point.Point, opts ...Option) (BoundedResult, error) {
	// 1. Options.
	o, err := resolve(opts)
	if err != nil {
		return BoundedResult{}, err
	}

	// 2. Queue and forest.
	q := NewQueue(points)
	f := dsu.New(len(points))

	// 3. Spend the budget.
	var (
		res   BoundedResult
		spent int
	)
	for spent < o.Budget {
		e, ok := q.Pop()
		if !ok {
			break
		}
		res.Consumed++
		merged := f.Union(e.I, e.J)
		if merged {
			res.Merges++
			o.OnMerge(MergeEvent{Edge: e, Merges: res.Merges, Components: f.Count(), Size: f.ComponentSize(e.I)})
		}
		if merged || o.BudgetMode == CountPairs {
			spent++
		}
	}

	// 4. Component sizes.
	res.Sizes = f.Sizes()
	res.Groups = Groups(f)

	o.Logger.Debug("bounded clustering finished",
		"points", len(points),
		"budget", o.Budget,
		"mode", o.BudgetMode.String(),
		"consumed", res.Consumed,
		"merges", res.Merges,
		"components", f.Count())

	// 5. Precondition on the result.
	if len(res.Sizes) < o.TopK {
		err := errors.Wrapf(ErrInsufficientComponents,
			"%d component(s) left after %d merge(s), need %d", len(res.Sizes), res.Merges, o.TopK)
		return BoundedResult{}, errors.WithHintf(err,
			"budget %d is too large for %d point(s); lower it", o.Budget, len(points))
	}

	// 6. Top-K product.
	res.Product = 1
	for _, s := range res.Sizes[:o.TopK] {
		res.Product *= uint64(s)
	}

	return res, nil
}
