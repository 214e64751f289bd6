// Package point parses junction-box coordinates into 3-D integer points.
//
// Input format
//
//	One point per line, three comma-separated signed integers:
//
//		162,817,812
//		57, 618, 57
//		-3,0,12
//
//	Whitespace around each token is ignored. Lines that are empty after
//	trimming are skipped; any other line must hold exactly three integers.
//
// Ordering
//
//	Parse keeps the input order. The position of a point in the returned
//	slice is its index everywhere else in the module (edge endpoints,
//	disjoint-set members), so callers must not reorder the slice.
//
// Errors
//
//	Every failure is a *ParseError that matches ErrMalformedPoint under
//	errors.Is and carries the 1-based line number and the offending text.
package point
