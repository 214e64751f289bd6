package cluster

import (
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/junction/edge"
	"github.com/katalvlaran/junction/point"
)

// ErrInsufficientComponents indicates that Bounded stopped with fewer than
// TopK components, so the top-K product is undefined. The merge budget is
// too large for the input.
var ErrInsufficientComponents = errors.New("cluster: too few components remain")

// ErrDisconnectedInput indicates that Critical exhausted the edge queue
// without joining every point, which only happens for fewer than two points.
var ErrDisconnectedInput = errors.New("cluster: point set cannot be fully connected")

// ErrInvalidOption indicates a rejected option value.
var ErrInvalidOption = errors.New("cluster: invalid option")

// DefaultBudget is the merge budget for full-scale inputs (about a
// thousand points). Toy inputs need a far smaller one.
const DefaultBudget = 1000

// DefaultTopK is how many of the largest components Bounded multiplies.
const DefaultTopK = 3

// BudgetMode selects what one unit of the Bounded merge budget pays for.
type BudgetMode int

const (
	// CountMerges spends budget only on unions that join two components.
	// Edges whose endpoints are already joined are consumed for free.
	CountMerges BudgetMode = iota

	// CountPairs spends budget on every consumed edge, whether or not its
	// union changed anything.
	CountPairs
)

func (m BudgetMode) String() string {
	switch m {
	case CountMerges:
		return "merges"
	case CountPairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// ParseBudgetMode maps "merges" or "pairs" to a BudgetMode.
func ParseBudgetMode(s string) (BudgetMode, error) {
	switch s {
	case "merges":
		return CountMerges, nil
	case "pairs":
		return CountPairs, nil
	default:
		return 0, errors.Wrapf(ErrInvalidOption, "unknown budget mode %q", s)
	}
}

// State is the phase of a Critical scan.
type State int

const (
	// Scanning is the initial state: edges are still being examined.
	Scanning State = iota
	// Found is terminal: the critical edge completed the forest.
	Found
	// Exhausted is terminal: the queue emptied first.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name for JSON and YAML reports.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// MergeEvent describes one successful union.
type MergeEvent struct {
	Edge       edge.Edge // the edge whose endpoints were joined
	Merges     int       // successful unions so far, this one included
	Components int       // components left after the union
	Size       int       // size of the component the endpoints now share
}

// Options configures Bounded and Critical.
//
// Fields:
//   - Budget     — Bounded only: merge budget, >= 0.
//   - BudgetMode — Bounded only: what the budget counts.
//   - TopK       — Bounded only: number of largest components multiplied, >= 1.
//   - Derive     — Critical only: answer from the critical edge's endpoints.
//   - Logger     — receives a Debug summary of each run.
//   - OnMerge    — called after every successful union.
type Options struct {
	Budget     int
	BudgetMode BudgetMode
	TopK       int
	Derive     func(a, b point.Point) uint64
	Logger     *slog.Logger
	OnMerge    func(MergeEvent)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns:
//
//	– Budget     = DefaultBudget
//	– BudgetMode = CountMerges
//	– TopK       = DefaultTopK
//	– Derive     = ProductX
//	– Logger     = slog.Default()
//	– OnMerge    = no-op
func DefaultOptions() Options {
	return Options{
		Budget:     DefaultBudget,
		BudgetMode: CountMerges,
		TopK:       DefaultTopK,
		Derive:     ProductX,
		Logger:     slog.Default(),
		OnMerge:    func(MergeEvent) {},
	}
}

// WithBudget sets the Bounded merge budget.
func WithBudget(n int) Option {
	return func(o *Options) { o.Budget = n }
}

// WithBudgetMode sets what the Bounded budget counts.
func WithBudgetMode(m BudgetMode) Option {
	return func(o *Options) { o.BudgetMode = m }
}

// WithTopK sets how many of the largest components Bounded multiplies.
func WithTopK(k int) Option {
	return func(o *Options) { o.TopK = k }
}

// WithDerive replaces the Critical answer function. A nil fn is ignored.
func WithDerive(fn func(a, b point.Point) uint64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Derive = fn
		}
	}
}

// WithLogger sets the run logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnMerge registers a callback run after every successful union.
// A nil fn is ignored.
func WithOnMerge(fn func(MergeEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// ProductX multiplies the X coordinates of a and b. A negative product is
// converted with two's-complement wrap-around.
func ProductX(a, b point.Point) uint64 { return uint64(a.X * b.X) }

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Budget < 0 {
		return o, errors.Wrapf(ErrInvalidOption, "negative budget %d", o.Budget)
	}
	if o.TopK < 1 {
		return o, errors.Wrapf(ErrInvalidOption, "top-k must be at least 1, got %d", o.TopK)
	}
	if o.BudgetMode != CountMerges && o.BudgetMode != CountPairs {
		return o, errors.Wrapf(ErrInvalidOption, "unknown budget mode %d", int(o.BudgetMode))
	}

	return o, nil
}
