//go:build rp2040

package pio

// PIO tick counter: a one-instruction state machine program that
// decrements X forever, one count per (divided) SM cycle. Reading the
// counter injects `mov isr, x` + `push noblock` over the EXEC port and
// drains the RX FIFO. The counter itself never touches the FIFO, so it
// cannot stall no matter how rarely it is read.
//
// X counts down from zero, so the up-counting tick value is -X. With
// the divider set for 1 MHz this behaves like a spare 32-bit
// microsecond timer, which is exactly the narrow source
// chrono.NewClockFrom32 widens.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// buildTickCounterProgram creates the free-running down-counter using
// AssemblerV0
func buildTickCounterProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Jmp(0, rp2pio.JmpXNZeroDec).Encode(), // 0: jmp x--, 0
		// .wrap
	}
}

const tickCounterOrigin = 0 // Load at offset 0 for correct jump addresses

// Instructions injected over the EXEC port on each read. AssemblerV0
// has no mov/push builders, so these are hand-encoded.
const (
	instrMovISRX     = 0xA0C1 // mov isr, x
	instrPushNoblock = 0x8000 // push noblock
)

// TickCounter is a chrono.TickSource32 backed by a PIO state machine.
type TickCounter struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	offset uint8
	pioNum uint8
	smNum  uint8
}

// NewTickCounter creates a tick counter on the given PIO block and
// state machine.
// pioNum: 0 for PIO0, 1 for PIO1
// smNum: 0-3 for state machine number
func NewTickCounter(pioNum, smNum uint8) *TickCounter {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}

	return &TickCounter{
		pio:    pioHW,
		sm:     pioHW.StateMachine(smNum),
		pioNum: pioNum,
		smNum:  smNum,
	}
}

// Init loads the counter program and starts it at tickHz counts per
// second. 1000000 gives microsecond ticks.
func (t *TickCounter) Init(tickHz uint32) error {
	t.sm.TryClaim()

	program := buildTickCounterProgram()
	offset, err := t.pio.AddProgram(program, tickCounterOrigin)
	if err != nil {
		return err
	}
	t.offset = offset

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// One count per divided cycle: divider = sysclk / tickHz, with the
	// fractional part in 1/256ths.
	sys := machine.CPUFrequency()
	div := sys / tickHz
	frac := uint8((uint64(sys%tickHz) * 256) / uint64(tickHz))
	cfg.SetClkDivIntFrac(uint16(div), frac)

	t.sm.Init(offset, cfg)
	t.sm.ClearFIFOs()
	t.sm.SetEnabled(true)
	return nil
}

// Ticks32 snapshots the counter. Each read spends two counter cycles
// executing the injected instructions, so heavy polling skews the
// counter low by two ticks per read.
func (t *TickCounter) Ticks32() uint32 {
	t.sm.Exec(instrMovISRX)
	t.sm.Exec(instrPushNoblock)

	var x uint32
	for !t.sm.IsRxFIFOEmpty() {
		x = t.sm.RxGet()
	}
	return -x // X runs down from zero; negate to count up
}

// Stop halts the state machine. The program stays loaded; Init starts
// a fresh count.
func (t *TickCounter) Stop() {
	t.sm.SetEnabled(false)
}
