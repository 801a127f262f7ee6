package chrono

// Auto-elapsed timers. Each stores only the timestamp its reading is
// measured from; Value computes elapsed time on the fly, so a reading
// keeps growing with no tick hook or background work. Copying a timer
// gives an independent timer sharing the original baseline.
//
// The zero value measures from the default clock's origin, so it reads
// as time since boot.

// ElapsedMicros64 is an auto-incrementing microsecond timer for
// non-blocking interval checks:
//
//	hb := chrono.NewElapsedMillis64(0)
//	for {
//		if hb.Value() >= 5000 {
//			hb.Set(0)
//			// periodic work every 5 s
//		}
//	}
type ElapsedMicros64 struct {
	baseUs int64
}

// NewElapsedMicros64 returns a timer currently reading val
// microseconds. Pass 0 to count from now.
func NewElapsedMicros64(val int64) ElapsedMicros64 {
	return ElapsedMicros64{baseUs: SaturatingSub(Micros64(), val)}
}

// Value returns the microseconds elapsed past the baseline.
func (e ElapsedMicros64) Value() int64 {
	return SaturatingSub(Micros64(), e.baseUs)
}

// Set re-bases the timer so it currently reads val microseconds.
func (e *ElapsedMicros64) Set(val int64) {
	e.baseUs = SaturatingSub(Micros64(), val)
}

// Add advances the reading by val microseconds: the baseline moves
// back, so the next Value reports val more.
func (e *ElapsedMicros64) Add(val int64) {
	e.baseUs = SaturatingSub(e.baseUs, val)
}

// Sub rewinds the reading by val microseconds.
func (e *ElapsedMicros64) Sub(val int64) {
	e.baseUs = SaturatingAdd(e.baseUs, val)
}

// Plus returns a copy reading val microseconds more than e.
func (e ElapsedMicros64) Plus(val int64) ElapsedMicros64 {
	return ElapsedMicros64{baseUs: SaturatingSub(e.baseUs, val)}
}

// Minus returns a copy reading val microseconds less than e.
func (e ElapsedMicros64) Minus(val int64) ElapsedMicros64 {
	return ElapsedMicros64{baseUs: SaturatingAdd(e.baseUs, val)}
}

// ElapsedMillis64 is ElapsedMicros64 at millisecond resolution. The
// baseline stays in microseconds, so no precision is lost across
// Set/Add/Sub; only Value divides.
type ElapsedMillis64 struct {
	baseUs int64
}

// NewElapsedMillis64 returns a timer currently reading val
// milliseconds. Pass 0 to count from now.
func NewElapsedMillis64(val int64) ElapsedMillis64 {
	return ElapsedMillis64{baseUs: SaturatingSub(Micros64(), millisToMicros(val))}
}

// Value returns the milliseconds elapsed past the baseline.
func (e ElapsedMillis64) Value() int64 {
	return SaturatingSub(Micros64(), e.baseUs) / 1000
}

// Set re-bases the timer so it currently reads val milliseconds.
func (e *ElapsedMillis64) Set(val int64) {
	e.baseUs = SaturatingSub(Micros64(), millisToMicros(val))
}

// Add advances the reading by val milliseconds.
func (e *ElapsedMillis64) Add(val int64) {
	e.baseUs = SaturatingSub(e.baseUs, millisToMicros(val))
}

// Sub rewinds the reading by val milliseconds.
func (e *ElapsedMillis64) Sub(val int64) {
	e.baseUs = SaturatingAdd(e.baseUs, millisToMicros(val))
}

// Plus returns a copy reading val milliseconds more than e.
func (e ElapsedMillis64) Plus(val int64) ElapsedMillis64 {
	return ElapsedMillis64{baseUs: SaturatingSub(e.baseUs, millisToMicros(val))}
}

// Minus returns a copy reading val milliseconds less than e.
func (e ElapsedMillis64) Minus(val int64) ElapsedMillis64 {
	return ElapsedMillis64{baseUs: SaturatingAdd(e.baseUs, millisToMicros(val))}
}

// ElapsedSeconds64 is ElapsedMicros64 at one-second resolution, the
// usual pick for uptime counters.
type ElapsedSeconds64 struct {
	baseUs int64
}

// NewElapsedSeconds64 returns a timer currently reading val seconds.
// Pass 0 to count from now.
func NewElapsedSeconds64(val int64) ElapsedSeconds64 {
	return ElapsedSeconds64{baseUs: SaturatingSub(Micros64(), secondsToMicros(val))}
}

// Value returns the seconds elapsed past the baseline.
func (e ElapsedSeconds64) Value() int64 {
	return SaturatingSub(Micros64(), e.baseUs) / 1000000
}

// Set re-bases the timer so it currently reads val seconds.
func (e *ElapsedSeconds64) Set(val int64) {
	e.baseUs = SaturatingSub(Micros64(), secondsToMicros(val))
}

// Add advances the reading by val seconds.
func (e *ElapsedSeconds64) Add(val int64) {
	e.baseUs = SaturatingSub(e.baseUs, secondsToMicros(val))
}

// Sub rewinds the reading by val seconds.
func (e *ElapsedSeconds64) Sub(val int64) {
	e.baseUs = SaturatingAdd(e.baseUs, secondsToMicros(val))
}

// Plus returns a copy reading val seconds more than e.
func (e ElapsedSeconds64) Plus(val int64) ElapsedSeconds64 {
	return ElapsedSeconds64{baseUs: SaturatingSub(e.baseUs, secondsToMicros(val))}
}

// Minus returns a copy reading val seconds less than e.
func (e ElapsedSeconds64) Minus(val int64) ElapsedSeconds64 {
	return ElapsedSeconds64{baseUs: SaturatingAdd(e.baseUs, secondsToMicros(val))}
}
