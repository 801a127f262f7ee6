package serial

import (
	"bytes"
	"io"
	"sync"
)

// MockPort is an in-memory Port for tests. Writes land in Sent;
// queue device output with QueueRead.
type MockPort struct {
	mu     sync.Mutex
	read   bytes.Buffer
	Sent   bytes.Buffer
	closed bool
}

// QueueRead appends data that subsequent Read calls will return.
func (p *MockPort) QueueRead(data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.read.Write(data)
}

// Read returns queued data, or io.EOF once the port is closed and drained.
func (p *MockPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.read.Len() == 0 {
		if p.closed {
			return 0, io.EOF
		}
		return 0, nil
	}
	return p.read.Read(b)
}

// Write records data in Sent
func (p *MockPort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, io.ErrClosedPipe
	}
	return p.Sent.Write(b)
}

// Close marks the port closed
func (p *MockPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// Flush is a no-op for the mock
func (p *MockPort) Flush() error {
	return nil
}
