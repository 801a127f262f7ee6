package chrono

// decimalDigits returns the number of characters v takes in decimal.
func decimalDigits(v uint64) int {
	n := 1
	for v >= 10 {
		n++
		v /= 10
	}
	return n
}

// itoa64 converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa64(n int64) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	u := absUint64(n)

	// Count digits
	temp := u
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Add space for negative sign
	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for u > 0 {
		buf[pos] = byte('0' + u%10)
		u /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}
