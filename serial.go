// serial.go - Optional serial passthrough for ports 0xF8/0xF9 (§4.3, §4.9).
// No third-party transport library in the example pack targets raw serial
// devices, so this boundary is a small stdlib-only interface; a host
// collaborator wires a concrete io.ReadWriter (a real port, a pty, a
// test double) behind it.

package sol20

import (
	"io"
	"sync"
)

// SerialPort is consulted by IOBus for the optional serial ports. A nil
// SerialPort on IOBus makes 0xF8/0xF9 behave like any other unmapped
// port: reads return 0, writes are discarded.
type SerialPort interface {
	// ReadByte returns the next received byte and true, or (0, false) if
	// none is available. Never blocks (§5).
	ReadByte() (byte, bool)

	// WriteByte transmits a byte.
	WriteByte(b byte)

	// StatusReady reports whether a received byte is available without
	// consuming it.
	StatusReady() bool
}

// NullSerialPort discards writes and never has data available. It is the
// zero-value-safe default when no real serial device is attached.
type NullSerialPort struct{}

func (NullSerialPort) ReadByte() (byte, bool) { return 0, false }
func (NullSerialPort) WriteByte(byte)         {}
func (NullSerialPort) StatusReady() bool      { return false }

// StreamSerialPort adapts a plain io.ReadWriter (a pty, a net.Conn, a
// real device file) to SerialPort. A background goroutine drains rw into
// a small buffer so ReadByte/StatusReady never block the CPU thread (§5).
type StreamSerialPort struct {
	rw  io.Writer
	mu  sync.Mutex
	buf []byte
}

// NewStreamSerialPort wraps rw for writes and starts a goroutine that
// reads from rw into an internal buffer until rw returns an error.
func NewStreamSerialPort(rw io.ReadWriter) *StreamSerialPort {
	s := &StreamSerialPort{rw: rw}
	go s.pump(rw)
	return s
}

func (s *StreamSerialPort) pump(r io.Reader) {
	one := make([]byte, 1)
	for {
		n, err := r.Read(one)
		if n > 0 {
			s.mu.Lock()
			s.buf = append(s.buf, one[0])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *StreamSerialPort) ReadByte() (byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buf) == 0 {
		return 0, false
	}
	b := s.buf[0]
	s.buf = s.buf[1:]
	return b, true
}

func (s *StreamSerialPort) WriteByte(b byte) {
	_, _ = s.rw.Write([]byte{b})
}

func (s *StreamSerialPort) StatusReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf) > 0
}
