//go:build !wasm

package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// NativePort is the tarm/serial implementation of Port. It normalizes
// tarm's read-timeout signaling into the Port contract: a Read that
// times out with no data returns (0, nil), so callers framing console
// responses by silence never mistake a quiet port for a closed one.
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens the console device described by cfg. The read timeout is
// what frames responses: the firmware sends no terminator after a
// command's output, so a quiet read marks the end.
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{
		port: port,
		cfg:  cfg,
	}, nil
}

// Read reads console output, returning (0, nil) when the read timeout
// passes without data.
func (p *NativePort) Read(b []byte) (int, error) {
	return normalizeRead(p.port.Read(b))
}

// normalizeRead maps tarm's timeout signal onto the Port contract.
// tarm reports an expired ReadTimeout as io.EOF, indistinguishable
// from a real end of stream; a USB CDC console only truly ends by
// unplugging, which surfaces as a device error instead, so an empty
// io.EOF read is always "still open, nothing yet".
func normalizeRead(n int, err error) (int, error) {
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}

// Write sends command bytes to the console.
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the port.
func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

// Flush discards pending buffers on the device, dropping any half-read
// console output so the next command starts from a clean frame.
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
