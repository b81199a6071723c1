package sol20

import "testing"

func TestMemoryWordRoundTrip(t *testing.T) {
	m := NewMemory()
	m.WriteWordLE(0x2000, 0xBEEF)
	requireEqualU16(t, "word", m.ReadWordLE(0x2000), 0xBEEF)
	requireEqualU8(t, "low byte", m.ReadByte(0x2000), 0xEF)
	requireEqualU8(t, "high byte", m.ReadByte(0x2001), 0xBE)
}

func TestMemoryWatchFlag(t *testing.T) {
	m := NewMemory()
	m.Watch(0xCC00, 0xCFFF)

	if m.TakeChanged() {
		t.Fatal("changed flag set before any write")
	}

	m.WriteByte(0x0000, 0x01) // outside watch window
	if m.TakeChanged() {
		t.Fatal("changed flag set by a write outside the watch window")
	}

	m.WriteByte(0xCC10, 0x01)
	if !m.TakeChanged() {
		t.Fatal("changed flag not set by a write inside the watch window")
	}
	if m.TakeChanged() {
		t.Fatal("TakeChanged did not clear the flag")
	}
}

func TestMemoryZeroWatchWindowCoversNothing(t *testing.T) {
	m := NewMemory() // Watch never called: watchLo/watchHi are both the zero value.
	m.WriteByte(0x0000, 0x01)
	if m.TakeChanged() {
		t.Fatal("zero-value watch window must not flag a write to address 0")
	}

	m.Watch(0, 0) // explicit zero/zero must behave the same as never calling Watch.
	m.WriteByte(0x0000, 0x02)
	if m.TakeChanged() {
		t.Fatal("Watch(0, 0) must not flag a write to address 0")
	}
}

func TestMemoryROMWriteDoesNotSetChanged(t *testing.T) {
	m := NewMemory()
	m.Watch(ROMStart, ROMEnd)
	m.WriteByte(ROMStart+1, 0x99)
	if m.TakeChanged() {
		t.Fatal("a dropped ROM write must not set the changed flag")
	}
}

func TestMemoryLoadROM(t *testing.T) {
	m := NewMemory()
	rom := []byte{0x01, 0x02, 0x03}
	m.LoadROM(rom)
	requireEqualU8(t, "rom[0]", m.ReadByte(ROMStart), 0x01)
	requireEqualU8(t, "rom[2]", m.ReadByte(ROMStart+2), 0x03)
	requireEqualU8(t, "rom[3] zero padded", m.ReadByte(ROMStart+3), 0x00)
}

func TestMemoryScreenView(t *testing.T) {
	m := NewMemory()
	m.WriteByte(ScreenStart, 'A')
	screen := m.Screen()
	requireEqualU8(t, "screen[0]", screen[0], 'A')
	requireEqualU16(t, "screen length", uint16(len(screen)), ScreenEnd-ScreenStart)
}
