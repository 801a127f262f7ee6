package device

import (
	"strings"
	"testing"

	"syschrono/host/serial"
)

// infoLine renders a console line the way the firmware does
func infoLine(msg string) string {
	return "\033[36m[I]\033[0m " + msg + "\r\n"
}

func errorLine(msg string) string {
	return "\033[31m[E]\033[0m " + msg + "\r\n"
}

func connectMock(t *testing.T, response string) (*Device, *serial.MockPort) {
	t.Helper()
	port := &serial.MockPort{}
	port.QueueRead([]byte(response))
	d := NewDevice()
	d.ConnectPort(port)
	return d, port
}

func TestExecSendsCommand(t *testing.T) {
	d, port := connectMock(t, infoLine("micros64:  1"))
	if _, err := d.Exec("time"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := port.Sent.String(); got != "time\n" {
		t.Errorf("expected %q sent, got %q", "time\n", got)
	}
}

func TestExecStripsColorAndBlankLines(t *testing.T) {
	d, _ := connectMock(t, infoLine("hello")+"\r\n"+infoLine("world"))
	lines, err := d.Exec("help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "[I] hello" || lines[1] != "[I] world" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

func TestExecNotConnected(t *testing.T) {
	d := NewDevice()
	if _, err := d.Exec("time"); err == nil {
		t.Error("expected error when not connected")
	}
}

func TestQueryTime(t *testing.T) {
	resp := infoLine("micros64:  123456789") +
		infoLine("millis64:  123456") +
		infoLine("seconds64: 123")
	d, _ := connectMock(t, resp)

	sample, err := d.QueryTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Micros != 123456789 {
		t.Errorf("expected micros 123456789, got %d", sample.Micros)
	}
	if sample.Millis != 123456 {
		t.Errorf("expected millis 123456, got %d", sample.Millis)
	}
	if sample.Seconds != 123 {
		t.Errorf("expected seconds 123, got %d", sample.Seconds)
	}
}

func TestQueryTimeIgnoresHeartbeat(t *testing.T) {
	// A heartbeat can land in the middle of a response
	resp := infoLine("micros64:  42") +
		infoLine("Uptime: 0:00:05.000 (5s) | Stopwatch: 100 ms [running]") +
		infoLine("millis64:  1") +
		infoLine("seconds64: 0")
	d, _ := connectMock(t, resp)

	sample, err := d.QueryTime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Micros != 42 || sample.Millis != 1 || sample.Seconds != 0 {
		t.Errorf("unexpected sample: %+v", sample)
	}
}

func TestQueryTimeIncomplete(t *testing.T) {
	d, _ := connectMock(t, infoLine("micros64:  42"))
	if _, err := d.QueryTime(); err == nil {
		t.Error("expected error for incomplete response")
	}
}

func TestQueryStopwatch(t *testing.T) {
	d, _ := connectMock(t, infoLine("Stopwatch: 1234 ms (0:00:01.234) [running]"))

	sample, err := d.QueryStopwatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Millis != 1234 {
		t.Errorf("expected 1234 ms, got %d", sample.Millis)
	}
	if sample.Formatted != "0:00:01.234" {
		t.Errorf("expected formatted 0:00:01.234, got %q", sample.Formatted)
	}
	if !sample.Running {
		t.Error("expected running state")
	}
}

func TestQueryStopwatchStopped(t *testing.T) {
	d, _ := connectMock(t, infoLine("Stopwatch: 500 ms (0:00:00.500) [stopped]"))

	sample, err := d.QueryStopwatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sample.Running {
		t.Error("expected stopped state")
	}
}

func TestQueryUptime(t *testing.T) {
	d, _ := connectMock(t, infoLine("Uptime: 3725 s (1:02:05) | formatted: 1:02:05.123"))

	secs, err := d.QueryUptime()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if secs != 3725 {
		t.Errorf("expected 3725, got %d", secs)
	}
}

func TestStopwatchControlOK(t *testing.T) {
	d, port := connectMock(t, infoLine("Stopwatch started"))
	if err := d.StopwatchStart(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := port.Sent.String(); got != "start\n" {
		t.Errorf("expected %q sent, got %q", "start\n", got)
	}
}

func TestStopwatchControlError(t *testing.T) {
	d, _ := connectMock(t, errorLine("something broke"))
	err := d.StopwatchStop()
	if err == nil {
		t.Fatal("expected error from [E] line")
	}
	if !strings.Contains(err.Error(), "something broke") {
		t.Errorf("expected device message in error, got %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[I] hello", "hello"},
		{"[E] bad", "bad"},
		{"no tag here", "no tag here"},
		{"[unclosed", "[unclosed"},
	}
	for _, tt := range tests {
		if got := Message(tt.in); got != tt.want {
			t.Errorf("Message(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestStripANSI(t *testing.T) {
	in := "\033[36m[I]\033[0m plain"
	if got := StripANSI(in); got != "[I] plain" {
		t.Errorf("expected %q, got %q", "[I] plain", got)
	}
	if got := StripANSI("untouched"); got != "untouched" {
		t.Errorf("expected %q, got %q", "untouched", got)
	}
}
