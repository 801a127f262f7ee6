package chrono

import (
	"math"
	"testing"
)

func TestSaturatingAdd(t *testing.T) {
	testCases := []struct {
		a, b     int64
		expected int64
	}{
		{0, 0, 0},
		{1, 2, 3},
		{-5, 3, -2},
		{math.MaxInt64, 0, math.MaxInt64},
		{math.MaxInt64, 1, math.MaxInt64},
		{1, math.MaxInt64, math.MaxInt64},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 0, math.MinInt64},
		{math.MinInt64, -1, math.MinInt64},
		{-1, math.MinInt64, math.MinInt64},
		{math.MinInt64, math.MinInt64, math.MinInt64},
		{math.MinInt64, 1, math.MinInt64 + 1},
		{math.MaxInt64, -1, math.MaxInt64 - 1},
		{math.MaxInt64, math.MinInt64, -1},
	}

	for _, tc := range testCases {
		got := SaturatingAdd(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("SaturatingAdd(%d, %d): expected %d, got %d", tc.a, tc.b, tc.expected, got)
		}
	}
}

func TestSaturatingSub(t *testing.T) {
	testCases := []struct {
		a, b     int64
		expected int64
	}{
		{0, 0, 0},
		{5, 3, 2},
		{3, 5, -2},
		{math.MinInt64, 0, math.MinInt64},
		{math.MinInt64, 1, math.MinInt64},
		{math.MinInt64, math.MaxInt64, math.MinInt64},
		{math.MaxInt64, -1, math.MaxInt64},
		{math.MaxInt64, math.MinInt64, math.MaxInt64},
		{0, math.MinInt64, math.MaxInt64},
		{-1, math.MinInt64, math.MaxInt64},
		{-2, math.MinInt64, math.MaxInt64 - 1},
		{0, math.MaxInt64, math.MinInt64 + 1},
		{math.MaxInt64, 1, math.MaxInt64 - 1},
	}

	for _, tc := range testCases {
		got := SaturatingSub(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("SaturatingSub(%d, %d): expected %d, got %d", tc.a, tc.b, tc.expected, got)
		}
	}
}

func TestSaturatingMul(t *testing.T) {
	testCases := []struct {
		a, b     int64
		expected int64
	}{
		{0, 0, 0},
		{0, math.MinInt64, 0},
		{math.MinInt64, 0, 0},
		{1, 1, 1},
		{-3, 7, -21},
		{1, math.MinInt64, math.MinInt64},
		{math.MinInt64, 1, math.MinInt64},
		{-1, math.MaxInt64, -math.MaxInt64},
		{-1, math.MinInt64, math.MaxInt64},
		{math.MinInt64, -1, math.MaxInt64},
		{2, math.MaxInt64, math.MaxInt64},
		{math.MaxInt64, 2, math.MaxInt64},
		{-2, math.MaxInt64, math.MinInt64},
		{math.MaxInt64, -2, math.MinInt64},
		{math.MinInt64, 2, math.MinInt64},
		{math.MinInt64, math.MinInt64, math.MaxInt64},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64},
		// Largest factor pair that still fits, and its first overflow.
		{3037000499, 3037000499, 9223372030926249001},
		{3037000500, 3037000500, math.MaxInt64},
		{-3037000500, 3037000500, math.MinInt64},
	}

	for _, tc := range testCases {
		got := SaturatingMul(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("SaturatingMul(%d, %d): expected %d, got %d", tc.a, tc.b, tc.expected, got)
		}
	}
}

func TestUnitConversionsSaturate(t *testing.T) {
	if got := millisToMicros(5); got != 5000 {
		t.Errorf("millisToMicros(5): expected 5000, got %d", got)
	}
	if got := millisToMicros(math.MaxInt64); got != math.MaxInt64 {
		t.Errorf("millisToMicros(MaxInt64): expected MaxInt64, got %d", got)
	}
	if got := millisToMicros(math.MinInt64); got != math.MinInt64 {
		t.Errorf("millisToMicros(MinInt64): expected MinInt64, got %d", got)
	}
	if got := secondsToMicros(-3); got != -3000000 {
		t.Errorf("secondsToMicros(-3): expected -3000000, got %d", got)
	}
	if got := secondsToMicros(math.MaxInt64 / 2); got != math.MaxInt64 {
		t.Errorf("secondsToMicros(MaxInt64/2): expected MaxInt64, got %d", got)
	}
}

func TestAbsUint64(t *testing.T) {
	testCases := []struct {
		value    int64
		expected uint64
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{math.MaxInt64, uint64(math.MaxInt64)},
		{math.MinInt64 + 1, uint64(math.MaxInt64)},
		{math.MinInt64, uint64(math.MaxInt64) + 1},
	}

	for _, tc := range testCases {
		got := absUint64(tc.value)
		if got != tc.expected {
			t.Errorf("absUint64(%d): expected %d, got %d", tc.value, tc.expected, got)
		}
	}
}
