package chrono

import (
	"math"
	"testing"
)

var benchFormatLen int

// BenchmarkFormatTimeInto measures the allocation-free path with a
// reused buffer, the way firmware render loops call it.
func BenchmarkFormatTimeInto(b *testing.B) {
	var buf [FormatBufferSize]byte
	var n int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, _ = FormatTimeInto(buf[:], 3723456789)
	}
	benchFormatLen = n
}

// BenchmarkFormatTimeInto_WorstCase renders the longest possible
// string: full sign plus a 20-digit hour count.
func BenchmarkFormatTimeInto_WorstCase(b *testing.B) {
	var buf [FormatBufferSize]byte
	var n int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, _ = FormatTimeInto(buf[:], math.MinInt64)
	}
	benchFormatLen = n
}

// BenchmarkFormatTime measures the allocating convenience wrapper for
// comparison against the buffer-based path.
func BenchmarkFormatTime(b *testing.B) {
	var s string
	for i := 0; i < b.N; i++ {
		s = FormatTime(3723456789)
	}
	benchFormatLen = len(s)
}
