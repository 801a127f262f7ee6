//go:build rp2040

// Tick Source Soak Test
//
// Runs a PIO tick counter as a 32-bit source behind the wrap-tracked
// clock and checks it against the hardware 64-bit timer. The counter
// is clocked at 8 MHz so its 32-bit space wraps every ~9 minutes; a
// bench session sees many wraps instead of one every 71. Verifies
// that widened time never goes backwards across wraps and reports
// drift between the sources. Both derive from the same crystal, so
// steady-state drift should sit near 0 ppm; what this actually shakes
// out is the counter program, the Exec-based readback, the fractional
// clock divider and the wrap bookkeeping.

package main

import (
	"machine"
	"time"

	"syschrono/chrono"
	"syschrono/targets/pio"
	"syschrono/targets/rp2040"
)

const divider = "============================================================"

const (
	tickHz         = 8000000 // 8 MHz: 32-bit wrap every ~537 s
	ticksPerUs     = tickHz / 1000000
	reportEverySec = 10
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{})
	time.Sleep(2 * time.Second) // let USB CDC enumerate and a terminal attach

	println(divider)
	println("=== Tick Source Soak Test ===")
	println(divider)
	println("PIO counter at", tickHz, "Hz vs hardware 64-bit timer")
	println("Expect a 32-bit wrap roughly every 9 minutes.")
	println("")

	counter := pio.NewTickCounter(0, 0) // PIO0, SM0
	if err := counter.Init(tickHz); err != nil {
		println("FATAL: PIO init failed:", err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	// The clock widens raw ticks, not microseconds; divide by
	// ticksPerUs when comparing against the reference.
	pioClock := chrono.NewClockFrom32(counter)
	refClock := chrono.NewClock(rp2040.RawTimer64{})
	chrono.SetDefaultClock(refClock) // report cadence runs off the hardware timer

	pioBase := pioClock.Micros() / ticksPerUs
	refBase := refClock.Micros()

	println("--- Sanity: 1 second sleep ---")
	time.Sleep(time.Second)
	pioDelta := chrono.SaturatingSub(pioClock.Micros()/ticksPerUs, pioBase)
	refDelta := chrono.SaturatingSub(refClock.Micros(), refBase)
	println("PIO elapsed:", pioDelta, "us")
	println("ref elapsed:", refDelta, "us")
	println("skew:", pioDelta-refDelta, "us")
	println("")
	println("--- Soak: monotonicity + drift ---")

	var (
		lastTicks  = pioClock.Micros()
		lastRaw    = counter.Ticks32()
		wraps      int
		violations int
		maxSkewUs  int64
		minSkewUs  int64
		reads      int64
	)
	report := chrono.NewElapsedSeconds64(0)

	for {
		// Monotonicity: the widened value must never decrease even
		// while the raw 32-bit word wraps underneath it.
		ticks := pioClock.Micros()
		if ticks < lastTicks {
			violations++
			println("VIOLATION: widened count went backwards:", lastTicks, "->", ticks)
		}
		lastTicks = ticks

		raw := counter.Ticks32()
		if raw < lastRaw {
			wraps++
			println("wrap #", wraps, "raw:", lastRaw, "->", raw, "widened:", ticks)
		}
		lastRaw = raw

		skew := chrono.SaturatingSub(ticks/ticksPerUs, pioBase) -
			chrono.SaturatingSub(refClock.Micros(), refBase)
		if skew > maxSkewUs {
			maxSkewUs = skew
		}
		if skew < minSkewUs {
			minSkewUs = skew
		}
		reads++

		if report.Value() >= reportEverySec {
			report.Set(0)
			printReport(pioClock, refClock, pioBase, refBase,
				wraps, violations, minSkewUs, maxSkewUs, reads)
		}

		time.Sleep(100 * time.Microsecond)
	}
}

func printReport(pioClock, refClock *chrono.Clock, pioBase, refBase int64,
	wraps, violations int, minSkewUs, maxSkewUs, reads int64) {

	pioDelta := chrono.SaturatingSub(pioClock.Micros()/ticksPerUs, pioBase)
	refDelta := chrono.SaturatingSub(refClock.Micros(), refBase)

	println("")
	println("[", chrono.FormatTime(refDelta), "]")
	println("  PIO:", pioDelta, "us  ref:", refDelta, "us")
	println("  drift:", pioDelta-refDelta, "us (", driftPPM(pioDelta, refDelta), "ppm )")
	println("  skew min/max:", minSkewUs, "/", maxSkewUs, "us over", reads, "reads")
	println("  wraps:", wraps, " violations:", violations)

	if violations == 0 {
		println("  OK - widened count is monotonic")
	} else {
		println("  FAIL - wrap tracking lost ticks")
	}
}

// driftPPM returns (pio-ref)/ref scaled to parts per million.
func driftPPM(pioDelta, refDelta int64) int64 {
	if refDelta == 0 {
		return 0
	}
	return chrono.SaturatingMul(pioDelta-refDelta, 1000000) / refDelta
}
