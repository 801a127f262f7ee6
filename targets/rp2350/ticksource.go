//go:build rp2350

// Package rp2350 exposes the RP2350 1 MHz hardware timer as tick
// sources for chrono clocks.
package rp2350

import (
	"runtime/volatile"
	"unsafe"
)

// RP2350 Timer peripheral memory map
// NOTE: RP2350 timer is at a DIFFERENT address than RP2040!
// - RP2040 TIMER: 0x40054000
// - RP2350 TIMER0: 0x400B0000
//
// Register offsets match the RP2040 layout; timeRawH @ 0x24 and
// timeRawL @ 0x28 are the unlatched pair used here.
const (
	timerBase     = 0x400B0000       // RP2350 TIMER0 base address
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// RawTimer64 reads the full 64-bit microsecond timer. This is the
// native wide counter: chrono.NewClock over it needs no wrap state.
type RawTimer64 struct{}

func (RawTimer64) Ticks64() uint64 {
	// Read high, low, then high again; retry when the high word moved,
	// so a low-word rollover between the reads cannot tear the value.
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

// RawTimer32 reads only the low word of the timer. See the RP2040
// variant for why a chip with a native 64-bit counter still offers
// the narrow source.
type RawTimer32 struct{}

func (RawTimer32) Ticks32() uint32 {
	return timerRAWL.Get()
}
