package sol20

import "testing"

type recordingRenderer struct {
	calls      int
	lastScroll int
}

func (r *recordingRenderer) Render(screen []byte, scrollLine int) {
	r.calls++
	r.lastScroll = scrollLine
}

func TestRunFrameRendersOnWatchedWrite(t *testing.T) {
	emu := NewEmulator(Config{
		WatchLow:  ScreenStart,
		WatchHigh: ScreenEnd - 1,
	})
	// MVI A,0xA5; STA screen_start; HLT.
	emu.Memory.WriteByte(0x0000, 0x3E)
	emu.Memory.WriteByte(0x0001, 0xA5)
	emu.Memory.WriteByte(0x0002, 0x32)
	emu.Memory.WriteWordLE(0x0003, ScreenStart)
	emu.Memory.WriteByte(0x0005, 0x76) // HLT

	r := &recordingRenderer{}
	emu.RunFrame(r)

	if r.calls != 1 {
		t.Fatalf("Render called %d times, want 1", r.calls)
	}
	requireEqualU8(t, "screen byte", emu.Memory.ReadByte(ScreenStart), 0xA5)
}

func TestRunFrameSkipsRenderWhenNothingChanged(t *testing.T) {
	emu := NewEmulator(Config{WatchLow: 0x2000, WatchHigh: 0x2000})
	emu.Memory.WriteByte(0x0000, 0x76) // HLT immediately, outside the watch window

	r := &recordingRenderer{}
	emu.RunFrame(r)

	if r.calls != 0 {
		t.Fatalf("Render called %d times, want 0", r.calls)
	}
}

func TestRunFrameNilRendererIsSafe(t *testing.T) {
	emu := NewEmulator(Config{})
	emu.Memory.WriteByte(0x0000, 0x76)
	emu.RunFrame(nil)
}
