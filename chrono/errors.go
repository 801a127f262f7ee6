package chrono

import "errors"

// ErrInvalidArgument reports malformed caller input, which for this
// package means a nil, empty or undersized destination buffer.
// Arithmetic overflow is never an error: duration math saturates
// instead (see satmath.go).
var ErrInvalidArgument = errors.New("chrono: invalid argument")

// ErrInternal reports a formatter rendering failure. It is defensive:
// with FormatBufferSize covering the worst-case hour count it should be
// unreachable, and seeing it means the digit writer and the size
// constant disagree.
var ErrInternal = errors.New("chrono: internal format error")

// BufferSizeError reports a destination buffer below the fixed minimum
// the formatter requires. Required is the capacity that would have
// succeeded.
type BufferSizeError struct {
	Required int
}

func (e *BufferSizeError) Error() string {
	return "chrono: buffer too small, need " + itoa64(int64(e.Required)) + " bytes"
}

// Unwrap classifies undersized buffers under ErrInvalidArgument so
// callers can match the coarse sentinel or the detailed type.
func (e *BufferSizeError) Unwrap() error {
	return ErrInvalidArgument
}
