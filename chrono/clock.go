package chrono

// Clock turns a platform tick counter into a continuous 64-bit
// microsecond timeline.
//
// Over a TickSource64 every read is a single pass-through with no state
// and no locking. Over a TickSource32 the clock widens the counter by
// wrap tracking: whenever a reading is numerically below the previous
// one the counter must have wrapped, so a high-order accumulator
// advances by one full wrap span. The compare-and-update runs inside a
// critical section because a read from an interrupt handler racing a
// read from the main loop could otherwise count the same wrap twice or
// miss it entirely.
//
// The 32-bit path needs Micros called at least once per wrap period
// (about 71.6 minutes for a 32-bit counter at 1 MHz). Less frequent
// reads silently lose a wrap; the clock cannot detect this.
type Clock struct {
	src64 TickSource64
	src32 TickSource32

	// wrap tracking, 32-bit sources only
	last uint32
	high uint64
}

// NewClock returns a Clock over a native 64-bit counter.
func NewClock(src TickSource64) *Clock {
	return &Clock{src64: src}
}

// NewClockFrom32 returns a Clock that widens a wrapping 32-bit counter.
func NewClockFrom32(src TickSource32) *Clock {
	return &Clock{src32: src}
}

// Micros returns monotonic microseconds since boot.
func (c *Clock) Micros() int64 {
	if c.src64 != nil {
		return int64(c.src64.Ticks64())
	}

	state := disableInterrupts()
	now := c.src32.Ticks32()
	if now < c.last {
		c.high += 1 << 32 // wrapped
	}
	c.last = now
	full := c.high | uint64(now)
	restoreInterrupts(state)

	return int64(full)
}

// Millis returns monotonic milliseconds since boot. Derived from
// Micros()/1000, truncating toward zero.
func (c *Clock) Millis() int64 {
	return c.Micros() / 1000
}

// Seconds returns monotonic seconds since boot. Derived from
// Micros()/1000000.
func (c *Clock) Seconds() int64 {
	return c.Micros() / 1000000
}

// MicrosSince returns the microseconds elapsed since startUs, a value
// previously obtained from Micros. A start in the future yields a
// negative result, which deadline checks rely on.
func (c *Clock) MicrosSince(startUs int64) int64 {
	return SaturatingSub(c.Micros(), startUs)
}

// MillisSince returns the milliseconds elapsed since startMs, a value
// previously obtained from Millis.
func (c *Clock) MillisSince(startMs int64) int64 {
	return SaturatingSub(c.Millis(), startMs)
}

// SecondsSince returns the seconds elapsed since startS, a value
// previously obtained from Seconds.
func (c *Clock) SecondsSince(startS int64) int64 {
	return SaturatingSub(c.Seconds(), startS)
}

// defaultClock backs the package-level accessors. Firmware swaps in a
// hardware-backed clock once at boot; tests swap in a scripted one.
var defaultClock = NewClock(RuntimeSource{})

// SetDefaultClock installs the clock behind the package-level accessors
// and the timer types built on them. Call it once during startup,
// before any timers are created: swapping clocks while timers are live
// rebases every outstanding timestamp.
func SetDefaultClock(c *Clock) {
	defaultClock = c
}

// DefaultClock returns the clock behind the package-level accessors.
func DefaultClock() *Clock {
	return defaultClock
}

// Micros64 returns monotonic microseconds since boot from the default
// clock.
func Micros64() int64 { return defaultClock.Micros() }

// Millis64 returns monotonic milliseconds since boot from the default
// clock.
func Millis64() int64 { return defaultClock.Millis() }

// Seconds64 returns monotonic seconds since boot from the default
// clock.
func Seconds64() int64 { return defaultClock.Seconds() }

// MicrosSince returns microseconds elapsed since startUs on the default
// clock.
func MicrosSince(startUs int64) int64 { return defaultClock.MicrosSince(startUs) }

// MillisSince returns milliseconds elapsed since startMs on the default
// clock.
func MillisSince(startMs int64) int64 { return defaultClock.MillisSince(startMs) }

// SecondsSince returns seconds elapsed since startS on the default
// clock.
func SecondsSince(startS int64) int64 { return defaultClock.SecondsSince(startS) }
