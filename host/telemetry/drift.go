package telemetry

import "time"

// DriftTracker estimates how fast a device clock runs relative to the
// host by comparing successive micros64 readings against the host
// wall-clock interval between the polls. Serial round-trip latency
// lands in both deltas, so it mostly cancels; per-interval estimates
// still jitter, which is why the exporter publishes this as a gauge
// rather than accumulating it.
//
// The zero value is ready; the first Observe only primes the baseline.
type DriftTracker struct {
	prevMicros int64
	prevAt     time.Time
	primed     bool
}

// Observe takes one device micros64 reading and the host time it was
// received. It returns the drift in ppm over the interval since the
// previous observation, with ok=false while priming or when the
// interval is unusable (device reboot, host clock step).
func (d *DriftTracker) Observe(deviceMicros int64, at time.Time) (ppm int64, ok bool) {
	if d.primed {
		deviceDelta := deviceMicros - d.prevMicros
		hostDelta := at.Sub(d.prevAt).Microseconds()
		// A negative device delta means the device rebooted; re-prime
		// on that and on a non-advancing host clock.
		if deviceDelta >= 0 && hostDelta > 0 {
			ppm = (deviceDelta - hostDelta) * 1000000 / hostDelta
			ok = true
		}
	}

	d.prevMicros = deviceMicros
	d.prevAt = at
	d.primed = true
	return ppm, ok
}

// Reset drops the baseline, so the next Observe primes again. Call it
// after a failed poll: the gap it leaves would otherwise be read as an
// interval.
func (d *DriftTracker) Reset() {
	d.primed = false
}
