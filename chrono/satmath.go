package chrono

import "math"

// Saturating int64 arithmetic. Every duration computation in this
// package goes through these helpers, so overflow clamps to the nearest
// representable value instead of wrapping. The clamp direction follows
// the sign of the true result.

// SaturatingAdd returns a+b, clamped to the int64 range.
func SaturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

// SaturatingSub returns a-b, clamped to the int64 range.
func SaturatingSub(a, b int64) int64 {
	if b > 0 && a < math.MinInt64+b {
		return math.MinInt64
	}
	if b < 0 && a > math.MaxInt64+b {
		return math.MaxInt64
	}
	return a - b
}

// SaturatingMul returns a*b, clamped to the int64 range. The pair
// (-1, MinInt64) overflows even though neither operand is large, so it
// is handled before the quotient checks.
func SaturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == -1 && b == math.MinInt64 {
		return math.MaxInt64
	}
	if b == -1 && a == math.MinInt64 {
		return math.MaxInt64
	}

	if a > 0 {
		if b > 0 {
			if a > math.MaxInt64/b {
				return math.MaxInt64
			}
		} else {
			if b < math.MinInt64/a {
				return math.MinInt64
			}
		}
	} else {
		if b > 0 {
			if a < math.MinInt64/b {
				return math.MinInt64
			}
		} else {
			if a < math.MaxInt64/b {
				return math.MaxInt64
			}
		}
	}
	return a * b
}

// millisToMicros converts milliseconds to microseconds with saturation,
// so a huge interval cannot silently wrap negative.
func millisToMicros(ms int64) int64 {
	return SaturatingMul(ms, 1000)
}

// secondsToMicros converts seconds to microseconds with saturation.
func secondsToMicros(s int64) int64 {
	return SaturatingMul(s, 1000000)
}

// absUint64 returns |v| as an unsigned value. MinInt64 has no positive
// int64 counterpart, so the magnitude only fits in a uint64.
func absUint64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	if v == math.MinInt64 {
		return uint64(math.MaxInt64) + 1
	}
	return uint64(-v)
}
