package sol20

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestIOBus() *IOBus {
	return NewIOBus(Config{SenseSwitches: 0xAA})
}

func TestSenseSwitchReadback(t *testing.T) {
	b := newTestIOBus()
	assert.Equal(t, byte(0xAA), b.In(PortSenseSwitches))
}

func TestScrollRegisterWriteMasksToFourBits(t *testing.T) {
	b := newTestIOBus()
	b.Out(PortScroll, 0xFF)
	assert.Equal(t, byte(0x0F), b.ScrollLine())
	assert.Equal(t, byte(scrollOK), b.In(PortScroll))
}

func TestKeyboardFIFOOrderAndUnderflow(t *testing.T) {
	b := newTestIOBus()
	b.BufferKey(0x41)
	b.BufferKey(0x42)

	assert.Equal(t, byte(0x41), b.In(PortKeyboardData), "first key")
	assert.Equal(t, byte(0x42), b.In(PortKeyboardData), "second key")
	assert.Equal(t, byte(0x00), b.In(PortKeyboardData), "underflow")
}

func TestKeyboardFIFODropsWhenFull(t *testing.T) {
	b := newTestIOBus()
	for i := 0; i < keyBufferSize+5; i++ {
		b.BufferKey(byte(i))
	}
	for i := 0; i < keyBufferSize; i++ {
		assert.Equal(t, byte(i), b.In(PortKeyboardData), "buffered key")
	}
	assert.Equal(t, byte(0x00), b.In(PortKeyboardData), "no key past capacity")
}

func TestStatusKDRInvertedConvention(t *testing.T) {
	b := newTestIOBus()
	status := b.In(PortStatus)
	assert.NotZero(t, status&statusKDR, "KDR should be set (1) when the keyboard FIFO is empty")

	b.BufferKey(0x10)
	status = b.In(PortStatus)
	assert.Zero(t, status&statusKDR, "KDR should be clear (0) once a key is buffered")
}

func TestStatusTapeBitsTrackHead(t *testing.T) {
	b := newTestIOBus()
	b.tape1 = []byte{0x01, 0x02}
	b.Out(PortStatus, tapeControlSelect1)

	status := b.In(PortStatus)
	assert.NotZero(t, status&statusTDR, "TDR should be set while tape_head < len(current_tape)")
	assert.NotZero(t, status&statusTTBE, "TTBE should be set while tape_head < len(current_tape)")

	b.In(PortTapeData)
	b.In(PortTapeData)
	status = b.In(PortStatus)
	assert.Zero(t, status&statusTDR, "TDR should clear once the tape is exhausted")
	assert.Zero(t, status&statusTTBE, "TTBE should clear once the tape is exhausted")
}

func TestTapeSelectResetsHeadAndOutputBuffer(t *testing.T) {
	b := newTestIOBus()
	b.tape1 = []byte{0xAA, 0xBB, 0xCC}
	b.Out(PortStatus, tapeControlSelect1)
	b.In(PortTapeData)
	b.Out(PortTapeData, 0x01)

	b.Out(PortStatus, tapeControlSelect1) // re-select: rewind and clear output
	assert.Equal(t, byte(0xAA), b.In(PortTapeData), "first byte after rewind")
	assert.Empty(t, b.tapeOut, "tape_out should be cleared on select")
}

func TestUnmappedPortFallback(t *testing.T) {
	b := newTestIOBus()
	assert.Equal(t, byte(0x00), b.In(0x55))
	b.Out(0x55, 0x99) // must not panic
}

func TestSerialNilBehavesAsUnmapped(t *testing.T) {
	b := newTestIOBus()
	assert.Equal(t, byte(0x00), b.In(PortSerialControl), "serial control with no device")
	assert.Equal(t, byte(0x00), b.In(PortSerialData), "serial data with no device")
}

type fakeSerialPort struct {
	pending []byte
	written []byte
}

func (f *fakeSerialPort) ReadByte() (byte, bool) {
	if len(f.pending) == 0 {
		return 0, false
	}
	b := f.pending[0]
	f.pending = f.pending[1:]
	return b, true
}
func (f *fakeSerialPort) WriteByte(b byte)  { f.written = append(f.written, b) }
func (f *fakeSerialPort) StatusReady() bool { return len(f.pending) > 0 }

func TestSerialPassthrough(t *testing.T) {
	fake := &fakeSerialPort{pending: []byte{0x7E}}
	b := NewIOBus(Config{Serial: fake})

	status := b.In(PortSerialControl)
	assert.NotZero(t, status&serialDataReady, "expected serial data-ready bit to be set")

	assert.Equal(t, byte(0x7E), b.In(PortSerialData), "serial rx byte")
	b.Out(PortSerialData, 0x10)
	assert.Equal(t, []byte{0x10}, fake.written, "serial tx byte")
}
