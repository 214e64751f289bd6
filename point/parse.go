package point

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// errTokenCount and errNotInteger are the two reasons a ParseError can carry.
var (
	errTokenCount = errors.New("want exactly three comma-separated values")
	errNotInteger = errors.New("value is not an integer")
)

// ParseLine parses a single "x,y,z" line.
// The returned error, if any, is a *ParseError with Line == 0.
func ParseLine(line string) (Point, error) {
	p, err := parseFields(line)
	if err != nil {
		return Point{}, &ParseError{Text: line, Err: err}
	}

	return p, nil
}

// Parse reads one point per line from r and returns them in input order.
//
// Steps:
//  1. Scan r line by line; trim each line.
//  2. Skip lines that are empty after trimming.
//  3. Split on ',' and parse three base-10 int64 tokens.
//  4. Stop at the first malformed line with a *ParseError naming it.
//
// A read error from r is returned wrapped, not as a ParseError.
// Complexity: O(total input size).
func Parse(r io.Reader) ([]Point, error) {
	var (
		points []Point
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		p, err := parseFields(raw)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "point: reading line %d", lineNo+1)
	}

	return points, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Point, error) {
	return Parse(strings.NewReader(s))
}

func parseFields(line string) (Point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, errors.Wrapf(errTokenCount, "got %d", len(fields))
	}

	var coords [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, errors.Wrapf(errors.Mark(err, errNotInteger), "token %d", i+1)
		}
		coords[i] = v
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
