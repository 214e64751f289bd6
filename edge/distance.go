package edge

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/junction/point"
)

// Distance returns the floored Euclidean distance between a and b.
//
// The squared distance is accumulated in uint64 with overflow detection;
// only inputs whose squared distance exceeds 2⁶⁴-1 take the math/big path.
// A result above math.MaxUint64 (coordinates spanning nearly the whole
// int64 range on every axis) saturates to math.MaxUint64.
func Distance(a, b point.Point) uint64 {
	if sq, ok := squaredDistance(a, b); ok {
		return ISqrt(sq)
	}

	return bigDistance(a, b)
}

// ISqrt returns ⌊√n⌋.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	// The float estimate is within one of the answer; fix it up with
	// division so r*r never overflows.
	r := uint64(math.Sqrt(float64(n)))
	for r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// squaredDistance reports dx²+dy²+dz² and false if it does not fit in uint64.
func squaredDistance(a, b point.Point) (uint64, bool) {
	var sum uint64
	for _, d := range [3]uint64{absDiff(a.X, b.X), absDiff(a.Y, b.Y), absDiff(a.Z, b.Z)} {
		hi, sq := bits.Mul64(d, d)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		sum, carry = bits.Add64(sum, sq, 0)
		if carry != 0 {
			return 0, false
		}
	}

	return sum, true
}

// absDiff is |a-b|, exact for any pair of int64 values.
func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}

func bigDistance(a, b point.Point) uint64 {
	sum := new(big.Int)
	for _, d := range [3]uint64{absDiff(a.X, b.X), absDiff(a.Y, b.Y), absDiff(a.Z, b.Z)} {
		v := new(big.Int).SetUint64(d)
		sum.Add(sum, v.Mul(v, v))
	}
	root := sum.Sqrt(sum)
	if !root.IsUint64() {
		return math.MaxUint64
	}

	return root.Uint64()
}
