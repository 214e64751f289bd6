package cluster

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/junction/dsu"
	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/point"
)

// CriticalResult reports a Critical run.
type CriticalResult struct {
	Answer   uint64    `json:"answer" yaml:"answer"`     // Derive(Edge.A, Edge.B)
	Edge     edge.Edge `json:"edge" yaml:"edge"`         // the critical edge
	State    State     `json:"state" yaml:"state"`       // Found on success
	Merges   int       `json:"merges" yaml:"merges"`     // successful unions, N-1 on success
	Consumed int       `json:"consumed" yaml:"consumed"` // edges examined, the critical one included
}

// Critical finds the edge whose union first joins every point into one
// component and derives the answer from its endpoints.
//
// The scan starts in Scanning and peeks the nearest edge each round:
//   - union merged and the forest is complete → Found, stop;
//   - union merged, more than one component left → pop, continue;
//   - endpoints already joined → pop, continue;
//   - queue empty → Exhausted, ErrDisconnectedInput.
//
// With at least two points the complete graph always reaches Found.
//
// Complexity: O(N² log N) time, O(N²) memory.
func Critical(points []point.Point, opts ...Option) (CriticalResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return CriticalResult{}, err
	}

	q := NewQueue(points)
	f := dsu.New(len(points))
	res := CriticalResult{State: Scanning}

	for res.State == Scanning {
		e, ok := q.Peek()
		if !ok {
			res.State = Exhausted
			break
		}
		res.Consumed++
		if f.Union(e.I, e.J) {
			res.Merges++
			o.OnMerge(MergeEvent{Edge: e, Merges: res.Merges, Components: f.Count(), Size: f.ComponentSize(e.I)})
			if f.AllConnected() {
				res.State = Found
				res.Edge = e
				res.Answer = o.Derive(e.A, e.B)
				break
			}
		}
		q.Pop()
	}

	o.Logger.Debug("critical edge search finished",
		"points", len(points),
		"state", res.State.String(),
		"consumed", res.Consumed,
		"merges", res.Merges)

	if res.State != Found {
		err := errors.Wrapf(ErrDisconnectedInput,
			"%d component(s) left after %d edge(s)", f.Count(), res.Consumed)
		return res, errors.WithHint(err, "at least two points are needed")
	}

	return res, nil
}
