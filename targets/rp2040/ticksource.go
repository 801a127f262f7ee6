//go:build rp2040

// Package rp2040 exposes the RP2040 1 MHz hardware timer as tick
// sources for chrono clocks.
package rp2040

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 Timer peripheral memory map
//
// Timer register offsets:
// timeHW   @ 0x00 - Write to upper 32b
// timeLW   @ 0x04 - Write to lower 32b
// timeHR   @ 0x08 - Latched read from upper 32b
// timeLR   @ 0x0C - Latched read from lower 32b
// alarm[4] @ 0x10-0x1C
// armed    @ 0x20
// timeRawH @ 0x24 - Raw read from upper 32b
// timeRawL @ 0x28 - Raw read from lower 32b
//
// The raw registers are used here: the latched pair shares its latch
// with every other reader, so it cannot be trusted once interrupts or
// the second core also read the timer.
const (
	timerBase     = 0x40054000
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

// RawTimer32 reads only the low word of the timer, wrapping every
// ~71.6 minutes. It feeds chrono.NewClockFrom32 on this hardware
// mainly so the wrap-tracked path can be soak-tested against the full
// counter; MCUs without a wide timer are the real audience for that
// path.
type RawTimer32 struct{}

func (RawTimer32) Ticks32() uint32 {
	return timerRAWL.Get()
}
