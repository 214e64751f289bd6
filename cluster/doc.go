// Package cluster groups 3-D junction boxes into circuits by repeatedly
// joining the closest pair that remains.
//
// What & Why
//
//	Every pair of points is an edge weighted by its floored Euclidean
//	distance. Edges are served shortest first from a min-priority queue
//	and their endpoints are merged in a disjoint-set forest. This is the
//	opening of Kruskal's algorithm, stopped early under one of two policies.
//
// Policies
//
//   - Bounded (Policy A): apply a fixed merge budget, then multiply the
//     sizes of the TopK largest components (three by default).
//     BudgetMode decides what the budget counts:
//     CountMerges spends one unit per successful union;
//     CountPairs spends one unit per consumed edge, redundant or not.
//
//   - Critical (Policy B): keep merging until the forest is one component.
//     The edge whose union got there is the critical edge; the answer is
//     derived from its two endpoints (by default the product of their X
//     coordinates). The scan is a three-state machine:
//
//     Scanning ──union completes the forest──▶ Found
//     Scanning ──queue empty──────────────────▶ Exhausted (ErrDisconnectedInput)
//
// Determinism
//
//	Equal distances are served by ascending (I, J) endpoint indices, so a
//	given input always produces the same answer.
//
// Complexity
//
//	O(N² log N) time and O(N²) memory for N points; the union-find work is
//	near-constant per edge.
//
// Errors
//
//   - ErrInsufficientComponents: Bounded left fewer than TopK components.
//   - ErrDisconnectedInput:      Critical ran out of edges (fewer than 2 points).
//   - ErrInvalidOption:          negative budget, TopK < 1, unknown mode or policy.
package cluster
