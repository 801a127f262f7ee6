// Package device is a host-side client for the chrono serial console.
// The firmware speaks a line-oriented text protocol: one command per
// line in, tagged log lines ("[I] ...") back out. Responses have no
// terminator, so the client frames them by read-timeout silence.
package device

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"syschrono/host/serial"
)

// Device represents a connection to a board running the chrono console
type Device struct {
	// Serial port
	port serial.Port

	// Read-timeout silence that marks the end of a response
	quietReads int

	// Connection state
	connected bool
}

// TimeSample holds one reading of the 64-bit time accessors
type TimeSample struct {
	Micros  int64
	Millis  int64
	Seconds int64
}

// StopwatchSample holds one reading of the on-device stopwatch
type StopwatchSample struct {
	Millis    int64
	Formatted string
	Running   bool
}

// NewDevice creates a new Device instance (not yet connected)
func NewDevice() *Device {
	return &Device{
		quietReads: 2,
		connected:  false,
	}
}

// Connect connects to a device via serial port
func (d *Device) Connect(devicePath string) error {
	return d.ConnectWithConfig(serial.DefaultConfig(devicePath))
}

// ConnectWithConfig connects to a device with a custom serial config
func (d *Device) ConnectWithConfig(cfg *serial.Config) error {
	// Open serial port
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	d.port = port
	d.connected = true

	// Give the board time to initialize (if it just powered on)
	time.Sleep(100 * time.Millisecond)

	// Discard the help banner and anything else queued up
	d.drain()

	return nil
}

// ConnectPort attaches to an already-open port (used in tests)
func (d *Device) ConnectPort(port serial.Port) {
	d.port = port
	d.connected = true
}

// Close closes the connection to the device
func (d *Device) Close() error {
	if d.port != nil {
		if err := d.port.Close(); err != nil {
			return err
		}
	}
	d.connected = false
	return nil
}

// IsConnected returns whether the device is connected
func (d *Device) IsConnected() bool {
	return d.connected
}

// Exec sends one command and returns the response lines with ANSI
// color codes removed. Lines keep their severity tag ("[I] ...");
// heartbeat lines the firmware emits on its own schedule come back
// interleaved, so callers scan for the prefix they need.
func (d *Device) Exec(cmd string) ([]string, error) {
	if !d.connected {
		return nil, fmt.Errorf("not connected to device")
	}

	if _, err := d.port.Write([]byte(cmd + "\n")); err != nil {
		return nil, fmt.Errorf("failed to send command %q: %w", cmd, err)
	}

	raw := d.drain()

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(StripANSI(line), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// drain reads until the port has been quiet for quietReads consecutive
// empty reads. The Port contract reports a read timeout as (0, nil);
// io.EOF from a closed port also counts as quiet so draining a dying
// connection still terminates.
func (d *Device) drain() string {
	var sb strings.Builder
	buf := make([]byte, 256)
	quiet := 0

	for quiet < d.quietReads {
		n, err := d.port.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
			quiet = 0
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			break
		}
		quiet++
	}
	return sb.String()
}

// QueryTime runs 'time' and parses the three accessor values
func (d *Device) QueryTime() (TimeSample, error) {
	lines, err := d.Exec("time")
	if err != nil {
		return TimeSample{}, err
	}

	var sample TimeSample
	seen := 0
	for _, line := range lines {
		msg := Message(line)
		fields := strings.Fields(msg)
		if len(fields) != 2 {
			continue
		}
		v, perr := strconv.ParseInt(fields[1], 10, 64)
		if perr != nil {
			continue
		}
		switch fields[0] {
		case "micros64:":
			sample.Micros = v
			seen++
		case "millis64:":
			sample.Millis = v
			seen++
		case "seconds64:":
			sample.Seconds = v
			seen++
		}
	}
	if seen != 3 {
		return TimeSample{}, fmt.Errorf("incomplete time response: %d of 3 values", seen)
	}
	return sample, nil
}

// QueryStopwatch runs 'elapsed' and parses the stopwatch summary line,
// e.g. "Stopwatch: 1234 ms (0:00:01.234) [running]"
func (d *Device) QueryStopwatch() (StopwatchSample, error) {
	lines, err := d.Exec("elapsed")
	if err != nil {
		return StopwatchSample{}, err
	}

	for _, line := range lines {
		msg := Message(line)
		if !strings.HasPrefix(msg, "Stopwatch: ") {
			continue
		}
		fields := strings.Fields(msg)
		// Stopwatch: <ms> ms (<formatted>) [<state>]
		if len(fields) != 5 {
			continue
		}
		ms, perr := strconv.ParseInt(fields[1], 10, 64)
		if perr != nil {
			continue
		}
		return StopwatchSample{
			Millis:    ms,
			Formatted: strings.Trim(fields[3], "()"),
			Running:   strings.Trim(fields[4], "[]") == "running",
		}, nil
	}
	return StopwatchSample{}, fmt.Errorf("no stopwatch summary in response")
}

// QueryUptime runs 'uptime' and returns whole seconds since boot
func (d *Device) QueryUptime() (int64, error) {
	lines, err := d.Exec("uptime")
	if err != nil {
		return 0, err
	}

	for _, line := range lines {
		msg := Message(line)
		if !strings.HasPrefix(msg, "Uptime: ") {
			continue
		}
		fields := strings.Fields(msg)
		if len(fields) < 3 || fields[2] != "s" {
			continue
		}
		secs, perr := strconv.ParseInt(fields[1], 10, 64)
		if perr != nil {
			continue
		}
		return secs, nil
	}
	return 0, fmt.Errorf("no uptime line in response")
}

// StopwatchStart runs 'start' on the device
func (d *Device) StopwatchStart() error { return d.execOK("start") }

// StopwatchStop runs 'stop' on the device
func (d *Device) StopwatchStop() error { return d.execOK("stop") }

// StopwatchResume runs 'resume' on the device
func (d *Device) StopwatchResume() error { return d.execOK("resume") }

// StopwatchReset runs 'reset' on the device
func (d *Device) StopwatchReset() error { return d.execOK("reset") }

func (d *Device) execOK(cmd string) error {
	lines, err := d.Exec(cmd)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "[E]") {
			return fmt.Errorf("device rejected %q: %s", cmd, Message(line))
		}
	}
	return nil
}

// Message strips a leading "[TAG] " prefix from a console line
func Message(line string) string {
	if strings.HasPrefix(line, "[") {
		if end := strings.Index(line, "] "); end >= 0 {
			return line[end+2:]
		}
	}
	return line
}

// StripANSI removes ANSI escape sequences (the firmware colors its
// tags) so parsers see plain text
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
					break
				}
			}
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
