//go:build !wasm

package serial

import (
	"errors"
	"io"
	"testing"
)

func TestNormalizeReadTimeout(t *testing.T) {
	// tarm reports an expired ReadTimeout as (0, io.EOF); the Port
	// contract turns that into a quiet read.
	n, err := normalizeRead(0, io.EOF)
	if n != 0 || err != nil {
		t.Errorf("timeout: expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestNormalizeReadPassesData(t *testing.T) {
	n, err := normalizeRead(5, nil)
	if n != 5 || err != nil {
		t.Errorf("data: expected (5, nil), got (%d, %v)", n, err)
	}

	// A partial read that also hits the timeout keeps its data.
	n, err = normalizeRead(3, io.EOF)
	if n != 3 || !errors.Is(err, io.EOF) {
		t.Errorf("partial: expected (3, io.EOF), got (%d, %v)", n, err)
	}
}

func TestNormalizeReadPassesErrors(t *testing.T) {
	broken := errors.New("device unplugged")
	n, err := normalizeRead(0, broken)
	if n != 0 || !errors.Is(err, broken) {
		t.Errorf("expected (0, device unplugged), got (%d, %v)", n, err)
	}
}

func TestOpenNilConfig(t *testing.T) {
	if _, err := Open(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	if cfg.Device != "/dev/ttyACM0" {
		t.Errorf("expected /dev/ttyACM0, got %s", cfg.Device)
	}
	if cfg.Baud != 115200 {
		t.Errorf("expected 115200, got %d", cfg.Baud)
	}
	if cfg.ReadTimeout != 100 {
		t.Errorf("expected 100ms read timeout, got %d", cfg.ReadTimeout)
	}
}
