package console

// MaxLineLen bounds a single command line. Input past the limit is
// dropped; the first MaxLineLen bytes still form the line.
const MaxLineLen = 64

// LineReader assembles newline-terminated commands from a byte stream
// fed one byte at a time, so firmware can poll a serial port without
// blocking the main loop. Carriage returns are skipped, which keeps
// both LF and CRLF terminals happy.
//
// The zero value is ready to use.
type LineReader struct {
	buf [MaxLineLen]byte
	n   int
}

// Push feeds one byte. When b completes a line, Push returns it with
// ok=true. The returned slice aliases internal storage and is only
// valid until the next Push.
func (r *LineReader) Push(b byte) (line []byte, ok bool) {
	switch b {
	case '\r':
		return nil, false
	case '\n':
		line = r.buf[:r.n]
		r.n = 0
		return line, true
	}
	if r.n < len(r.buf) {
		r.buf[r.n] = b
		r.n++
	}
	return nil, false
}

// Pending returns the number of buffered bytes of the line in progress.
func (r *LineReader) Pending() int {
	return r.n
}
