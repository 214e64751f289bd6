package point

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// ErrMalformedPoint indicates a line that is not three comma-separated integers.
var ErrMalformedPoint = errors.New("point: malformed point")

// Point is an immutable position in 3-D integer space.
// It is comparable, so two points are equal exactly when all coordinates match.
type Point struct {
	X, Y, Z int64
}

// String renders p in the input format "x,y,z".
func (p Point) String() string {
	b := make([]byte, 0, 24)
	b = strconv.AppendInt(b, p.X, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Y, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Z, 10)

	return string(b)
}

// ParseError describes a line that could not be turned into a Point.
type ParseError struct {
	Line int    // 1-based line number, 0 when parsing a lone line
	Text string // the raw line
	Err  error  // underlying cause
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return "point: line " + strconv.Itoa(e.Line) + " " + strconv.Quote(e.Text) + ": " + e.Err.Error()
	}

	return "point: " + strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrMalformedPoint for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrMalformedPoint }
