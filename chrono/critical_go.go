//go:build !tinygo

package chrono

import "sync"

// intrState is a placeholder for interrupt state on regular Go
type intrState uintptr

// wrapMu stands in for masked interrupts on hosts, where concurrent
// goroutines take the place of interrupt handlers.
var wrapMu sync.Mutex

// disableInterrupts takes the wrap lock on regular Go
func disableInterrupts() intrState {
	wrapMu.Lock()
	return 0
}

// restoreInterrupts releases the wrap lock
func restoreInterrupts(state intrState) {
	wrapMu.Unlock()
}
