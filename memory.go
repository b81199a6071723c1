// memory.go - 64 KiB flat memory image with a write-protected ROM window
// and a watched write region, grounded on the page-mapped SystemBus/MachineBus
// pattern used elsewhere in this codebase's CPU cores.

package sol20

import "sync/atomic"

// Memory is the Sol-20's 64 KiB address space. Reads and writes are not
// internally synchronised beyond the watch flag: per §5, the CPU that
// drives Memory is single-threaded, and the only cross-thread signal is
// the changed flag polled by the frame driver.
type Memory struct {
	bytes [MemSize]byte

	watchLo uint32
	watchHi uint32
	changed atomic.Bool
}

// NewMemory returns a zero-initialised memory image with no watch window.
func NewMemory() *Memory {
	m := &Memory{}
	m.Watch(0, 0)
	return m
}

// LoadROM overlays rom at ROMStart. Overlaying is a construction-time
// operation, not a write through the write-protected path: it bypasses the
// ROM guard in WriteByte.
func (m *Memory) LoadROM(rom []byte) {
	n := copy(m.bytes[ROMStart:ROMEnd+1], rom)
	for i := ROMStart + n; i <= ROMEnd; i++ {
		m.bytes[i] = 0
	}
}

// ReadByte returns the byte at addr.
func (m *Memory) ReadByte(addr uint16) byte {
	return m.bytes[addr]
}

// ReadWordLE returns the little-endian word at addr (low byte at addr).
func (m *Memory) ReadWordLE(addr uint16) uint16 {
	lo := uint16(m.bytes[addr])
	hi := uint16(m.bytes[addr+1])
	return lo | hi<<8
}

// WriteByte writes v at addr. Writes to the ROM window are silently
// dropped and never set the changed flag (§4.1).
func (m *Memory) WriteByte(addr uint16, v byte) {
	if addr >= ROMStart && addr <= ROMEnd {
		return
	}
	m.bytes[addr] = v
	m.noteWrite(uint32(addr))
}

// WriteWordLE writes v as a little-endian word at addr, low byte first.
// Each half goes through WriteByte so the ROM guard and watch flag apply
// independently to each byte, matching a real bus where the two byte
// writes are distinct bus cycles.
func (m *Memory) WriteWordLE(addr uint16, v uint16) {
	m.WriteByte(addr, byte(v))
	m.WriteByte(addr+1, byte(v>>8))
}

// Watch designates [lo, hi] (inclusive) as the watched region. lo == hi
// == 0 is the zero value of Config and means "no watch": watchLo is set
// above watchHi so noteWrite's range check can never be satisfied,
// rather than treating it as a one-byte window over address 0x0000.
func (m *Memory) Watch(lo, hi uint16) {
	if lo == 0 && hi == 0 {
		m.watchLo = 1
		m.watchHi = 0
		return
	}
	m.watchLo = uint32(lo)
	m.watchHi = uint32(hi)
}

// TakeChanged reports whether a watched-region write occurred since the
// last call, clearing the flag atomically.
func (m *Memory) TakeChanged() bool {
	return m.changed.Swap(false)
}

func (m *Memory) noteWrite(addr uint32) {
	if addr >= m.watchLo && addr <= m.watchHi {
		m.changed.Store(true)
	}
}

// Screen returns a read-only view of the text screen for the renderer
// contract (§6). Callers must not retain the slice past the current frame.
func (m *Memory) Screen() []byte {
	return m.bytes[ScreenStart:ScreenEnd]
}
