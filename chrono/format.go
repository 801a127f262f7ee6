package chrono

// FormatBufferSize is the minimum destination length FormatTimeInto
// accepts: a sign, up to twenty hour digits, the separators and the
// fixed MM:SS.mmm tail, plus one byte for the trailing NUL. Undersized
// buffers are rejected up front rather than truncated, so the
// requirement stays a single published constant instead of a per-value
// surprise.
const FormatBufferSize = 32

// FormatTimeInto renders microsSinceBoot as H:MM:SS.mmm into buf
// without allocating. Hours grow unpadded as uptime accumulates;
// minutes and seconds are zero-padded to two digits, milliseconds to
// three. Negative durations carry a leading minus, including sub-second
// magnitudes that round toward zero ("-0:00:00.000").
//
// On success it returns the number of bytes written, not counting the
// NUL placed after the text for C-style consumers. On failure it
// returns 0 with ErrInvalidArgument (nil or empty buf, nothing written)
// or a BufferSizeError (len(buf) < FormatBufferSize, buf[0] left as a
// terminator). ErrInternal guards the rendering itself and should never
// surface.
func FormatTimeInto(buf []byte, microsSinceBoot int64) (int, error) {
	if len(buf) == 0 {
		return 0, ErrInvalidArgument
	}

	// Failed calls leave an empty C string behind.
	buf[0] = 0

	if len(buf) < FormatBufferSize {
		return 0, &BufferSizeError{Required: FormatBufferSize}
	}

	negative := microsSinceBoot < 0
	totalMs := absUint64(microsSinceBoot) / 1000
	hours := totalMs / 3600000
	minutes := (totalMs / 60000) % 60
	seconds := (totalMs / 1000) % 60
	millis := totalMs % 1000

	// ':'MM':'SS'.'mmm is 9 bytes, plus the NUL and an optional sign.
	need := decimalDigits(hours) + 10
	if negative {
		need++
	}
	if need > len(buf) {
		return 0, ErrInternal
	}

	n := 0
	if negative {
		buf[n] = '-'
		n++
	}
	n += writeUint(buf[n:], hours, 0)
	buf[n] = ':'
	n++
	n += writeUint(buf[n:], minutes, 2)
	buf[n] = ':'
	n++
	n += writeUint(buf[n:], seconds, 2)
	buf[n] = '.'
	n++
	n += writeUint(buf[n:], millis, 3)
	buf[n] = 0

	return n, nil
}

// FormatNowInto renders the default clock's current time into buf under
// the FormatTimeInto contract.
func FormatNowInto(buf []byte) (int, error) {
	return FormatTimeInto(buf, Micros64())
}

// FormatTime renders microsSinceBoot as H:MM:SS.mmm. It allocates the
// returned string; hot paths should call FormatTimeInto with a reused
// buffer instead.
func FormatTime(microsSinceBoot int64) string {
	var buf [FormatBufferSize]byte
	n, err := FormatTimeInto(buf[:], microsSinceBoot)
	if err != nil {
		return ""
	}
	return string(buf[:n])
}

// FormatNow renders the default clock's current time as H:MM:SS.mmm.
func FormatNow() string {
	return FormatTime(Micros64())
}

// writeUint renders v in decimal into dst, zero-padded to width, and
// returns the byte count. The scratch array keeps it allocation free.
func writeUint(dst []byte, v uint64, width int) int {
	var tmp [20]byte
	pos := len(tmp)
	for {
		pos--
		tmp[pos] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	for len(tmp)-pos < width {
		pos--
		tmp[pos] = '0'
	}
	return copy(dst, tmp[pos:])
}
