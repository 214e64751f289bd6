package point_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/point"
)

// TestParse_PreservesOrder verifies points come back in input order with their coordinates intact.
func TestParse_PreservesOrder(t *testing.T) {
	in := "162,817,812\n57,618,57\n-906,360,-560\n"

	pts, err := point.ParseString(in)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	assert.Equal(t, point.Point{X: 162, Y: 817, Z: 812}, pts[0])
	assert.Equal(t, point.Point{X: 57, Y: 618, Z: 57}, pts[1])
	assert.Equal(t, point.Point{X: -906, Y: 360, Z: -560}, pts[2])
}

// TestParse_WhitespaceAndBlankLines checks token trimming, CRLF endings and skipped blank lines.
func TestParse_WhitespaceAndBlankLines(t *testing.T) {
	in := "  1, 2 ,3  \r\n\r\n\t4,5,6\n   \n7,8,9"

	pts, err := point.ParseString(in)
	require.NoError(t, err)
	assert.Equal(t, []point.Point{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, pts)
}

// TestParse_Empty returns no points and no error.
func TestParse_Empty(t *testing.T) {
	pts, err := point.ParseString("")
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestParse_Malformed covers every rejection path and the reported line number.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"two tokens", "1,2,3\n4,5\n", 2},
		{"four tokens", "1,2,3,4", 1},
		{"non numeric", "1,2,3\n\n1,x,3", 3},
		{"empty token", "1,,3", 1},
		{"float", "1.5,2,3", 1},
		{"overflow", "1,2,99999999999999999999", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pts, err := point.ParseString(tc.in)
			assert.Nil(t, pts)
			require.Error(t, err)
			assert.ErrorIs(t, err, point.ErrMalformedPoint)

			var pe *point.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Contains(t, err.Error(), "line "+strconv.Itoa(tc.line))
		})
	}
}

// TestParse_NumericCause keeps the strconv failure reachable.
func TestParse_NumericCause(t *testing.T) {
	_, err := point.ParseString("1,abc,3")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "abc", numErr.Num)
}

func TestParseLine(t *testing.T) {
	p, err := point.ParseLine(" -1,0, 42 ")
	require.NoError(t, err)
	assert.Equal(t, point.Point{X: -1, Y: 0, Z: 42}, p)

	_, err = point.ParseLine("1;2;3")
	assert.ErrorIs(t, err, point.ErrMalformedPoint)
	var pe *point.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Zero(t, pe.Line)
}

// TestPoint_StringRoundTrip verifies String output is accepted by ParseLine.
func TestPoint_StringRoundTrip(t *testing.T) {
	for _, p := range []point.Point{{}, {1, -2, 3}, {-9223372036854775808, 9223372036854775807, 0}} {
		got, err := point.ParseLine(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

// TestPoint_MapKey relies on value equality.
func TestPoint_MapKey(t *testing.T) {
	seen := map[point.Point]int{}
	pts, err := point.Parse(strings.NewReader("1,2,3\n1,2,3\n3,2,1"))
	require.NoError(t, err)
	for i, p := range pts {
		seen[p] = i
	}
	assert.Len(t, seen, 2)
}
