// Package edge turns a point set into the complete graph of weighted
// junction-box pairs.
//
// What
//
//   - Distance: ⌊√(dx²+dy²+dz²)⌋ in integer arithmetic. There is no float
//     rounding in the result, so equal-looking distances really are equal.
//   - Complete: every unordered pair (i, j), i < j, exactly once.
//   - Key / Less: the ordering used by the clustering queue. Key extracts
//     the distance; Less breaks distance ties by endpoint indices so that
//     every run over the same input pops edges in the same order.
//
// Complexity
//
//	Complete is O(N²) in time and memory by construction; inputs are a few
//	thousand points at most.
package edge
