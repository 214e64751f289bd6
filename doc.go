// Package junction clusters junction boxes in 3-D space into circuits,
// always wiring the closest unconnected pair next.
//
// Everything is organized under a handful of subpackages, bottom-up:
//
//	point/   — integer 3-D coordinates and the "x,y,z" line parser
//	edge/    — floored Euclidean distance and complete pair generation
//	pq/      — generic key-extracting min-priority queue
//	dsu/     — disjoint-set forest (union by size, path compression)
//	cluster/ — the two merge policies: Bounded and Critical
//
// and a command-line front end:
//
//	cmd/junction — bounded, critical and components subcommands
//
// Quick ASCII example:
//
//	A──B     C
//	│
//	D        E──F
//
//	six boxes, three circuits of sizes 3, 2 and 1.
//
//	go install github.com/katalvlaran/junction/cmd/junction@latest
package junction
