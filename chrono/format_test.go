package chrono

import (
	"errors"
	"math"
	"testing"
)

func TestFormatTimeInto(t *testing.T) {
	testCases := []struct {
		us       int64
		expected string
	}{
		{0, "0:00:00.000"},
		{999, "0:00:00.000"}, // sub-millisecond truncates
		{1000, "0:00:00.001"},
		{-1, "-0:00:00.000"}, // sign survives sub-second magnitudes
		{-1234567, "-0:00:01.234"},
		{1234567, "0:00:01.234"},
		{59999999, "0:00:59.999"},
		{60000000, "0:01:00.000"},
		{3599999999, "0:59:59.999"},
		{3600000000, "1:00:00.000"},
		{3723456000, "1:02:03.456"},
		{86399999999, "23:59:59.999"},
		{86400000000, "24:00:00.000"}, // hours keep counting past a day
		{360000000000000, "100000:00:00.000"},
		{math.MaxInt64, "2562047788:00:54.775"},
		{math.MinInt64, "-2562047788:00:54.775"},
	}

	for _, tc := range testCases {
		var buf [FormatBufferSize]byte
		n, err := FormatTimeInto(buf[:], tc.us)
		if err != nil {
			t.Errorf("FormatTimeInto(%d): unexpected error: %v", tc.us, err)
			continue
		}
		if got := string(buf[:n]); got != tc.expected {
			t.Errorf("FormatTimeInto(%d): expected %q, got %q", tc.us, tc.expected, got)
		}
		if n != len(tc.expected) {
			t.Errorf("FormatTimeInto(%d): expected n=%d, got %d", tc.us, len(tc.expected), n)
		}
		if buf[n] != 0 {
			t.Errorf("FormatTimeInto(%d): missing NUL terminator", tc.us)
		}
	}
}

func TestFormatTimeIntoNilBuffer(t *testing.T) {
	n, err := FormatTimeInto(nil, 12345)
	if n != 0 {
		t.Errorf("expected n=0, got %d", n)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFormatTimeIntoUndersized(t *testing.T) {
	// One byte short of the published minimum.
	buf := make([]byte, FormatBufferSize-1)
	for i := range buf {
		buf[i] = 'x'
	}

	n, err := FormatTimeInto(buf, 12345)
	if n != 0 {
		t.Errorf("expected n=0, got %d", n)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	var sizeErr *BufferSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected BufferSizeError, got %v", err)
	}
	if sizeErr.Required != FormatBufferSize {
		t.Errorf("expected Required=%d, got %d", FormatBufferSize, sizeErr.Required)
	}
	if buf[0] != 0 {
		t.Errorf("expected empty terminated buffer, got leading byte %q", buf[0])
	}
}

func TestFormatTimeIntoExactMinimum(t *testing.T) {
	buf := make([]byte, FormatBufferSize)
	n, err := FormatTimeInto(buf, 3723456000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(buf[:n]); got != "1:02:03.456" {
		t.Errorf("expected %q, got %q", "1:02:03.456", got)
	}
}

func TestFormatTimeIntoOversized(t *testing.T) {
	buf := make([]byte, 128)
	n, err := FormatTimeInto(buf, -62000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(buf[:n]); got != "-0:00:00.062" {
		t.Errorf("expected %q, got %q", "-0:00:00.062", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime(3723456000); got != "1:02:03.456" {
		t.Errorf("expected %q, got %q", "1:02:03.456", got)
	}
	if got := FormatTime(math.MinInt64); got != "-2562047788:00:54.775" {
		t.Errorf("expected %q, got %q", "-2562047788:00:54.775", got)
	}
}

func TestFormatNow(t *testing.T) {
	src := &manualSource64{us: 3661001000}
	restore := installTestClock(src)
	defer restore()

	if got := FormatNow(); got != "1:01:01.001" {
		t.Errorf("FormatNow: expected %q, got %q", "1:01:01.001", got)
	}

	var buf [FormatBufferSize]byte
	n, err := FormatNowInto(buf[:])
	if err != nil {
		t.Fatalf("FormatNowInto: unexpected error: %v", err)
	}
	if got := string(buf[:n]); got != "1:01:01.001" {
		t.Errorf("FormatNowInto: expected %q, got %q", "1:01:01.001", got)
	}
}

func TestBufferSizeErrorMessage(t *testing.T) {
	err := &BufferSizeError{Required: FormatBufferSize}
	expected := "chrono: buffer too small, need 32 bytes"
	if got := err.Error(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
