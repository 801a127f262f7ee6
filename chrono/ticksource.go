package chrono

import "time"

// TickSource64 is a platform counter that is already at least 64 bits
// wide. Reads pass straight through; there is no extension state and no
// locking.
type TickSource64 interface {
	// Ticks64 returns monotonic microseconds since an arbitrary epoch.
	Ticks64() uint64
}

// TickSource32 is a narrow platform counter that wraps roughly every
// 71.6 minutes at 1 MHz. A Clock widens it; see Clock.Micros for the
// wrap-tracking contract.
type TickSource32 interface {
	// Ticks32 returns the current raw counter value in microseconds.
	Ticks32() uint32
}

// bootEpoch anchors RuntimeSource readings so they start near zero,
// like a hardware counter out of reset.
var bootEpoch = time.Now()

// RuntimeSource is the portable TickSource64 backed by the Go runtime's
// monotonic clock. It serves hosts and simulation; register-level
// sources live under targets/.
type RuntimeSource struct{}

func (RuntimeSource) Ticks64() uint64 {
	return uint64(time.Since(bootEpoch) / time.Microsecond)
}
