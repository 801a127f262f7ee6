package serial

import (
	"io"
)

// Port is a serial connection to a board running the chrono console.
// Implementations: NativePort (tarm/serial) and MockPort (tests).
//
// Read returns (0, nil) when the read timeout passes with no data;
// callers frame console responses by counting those quiet reads, since
// the firmware sends no terminator after a command's output.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered data on the port.
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (the chrono console runs over USB CDC, which ignores it)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for the chrono console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // Console baud rate
		ReadTimeout: 100,    // 100ms read timeout
	}
}
