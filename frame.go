// frame.go - The frame driver (§4.5): runs the CPU for one cycle
// quantum, then hands control to an external renderer if the screen
// changed or scrolled. Also assembles Memory, CPU and IOBus into the
// single Emulator aggregate a host collaborator constructs and drives.

package sol20

import "log"

// Renderer is the external collaborator given a read-only view of the
// text screen after a frame that changed it (§6 "Renderer contract").
type Renderer interface {
	Render(screen []byte, scrollLine int)
}

// Emulator wires Memory, CPU and IOBus together and drives them one
// frame at a time. It is the construction-time entry point a host
// collaborator uses; none of Memory, CPU or IOBus need to be assembled
// by hand.
type Emulator struct {
	Memory *Memory
	CPU    *CPU
	IOBus  *IOBus

	logger     *log.Logger
	lastScroll byte
}

// NewEmulator builds an Emulator from cfg: a memory image with cfg.ROM
// overlaid and the watch window set, an IOBus with both tape scripts
// loaded, and a CPU wired to both.
func NewEmulator(cfg Config) *Emulator {
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger
	}

	mem := NewMemory()
	mem.LoadROM(cfg.ROM)
	mem.Watch(cfg.WatchLow, cfg.WatchHigh)

	io := NewIOBus(cfg)

	bus := &emulatorBus{mem: mem, io: io}
	cpu := NewCPU(bus)

	return &Emulator{
		Memory: mem,
		CPU:    cpu,
		IOBus:  io,
		logger: logger,
	}
}

// WithLogger replaces the Emulator's diagnostic logger, returning e for
// chaining with NewEmulator.
func (e *Emulator) WithLogger(logger *log.Logger) *Emulator {
	e.logger = logger
	return e
}

// RunFrame executes one frame quantum and, if the screen changed or the
// scroll register moved since the last frame, invokes r (§4.5).
func (e *Emulator) RunFrame(r Renderer) {
	e.CPU.RunFrame()

	scroll := e.IOBus.ScrollLine()
	changed := e.Memory.TakeChanged()
	if r == nil {
		return
	}
	if changed || scroll != e.lastScroll {
		r.Render(e.Memory.Screen(), int(scroll))
	}
	e.lastScroll = scroll
}

// emulatorBus routes memory-mapped addresses to Memory and port accesses
// to IOBus, satisfying the CPU's Bus interface.
type emulatorBus struct {
	mem *Memory
	io  *IOBus
}

func (b *emulatorBus) ReadByte(addr uint16) byte     { return b.mem.ReadByte(addr) }
func (b *emulatorBus) WriteByte(addr uint16, v byte) { b.mem.WriteByte(addr, v) }
func (b *emulatorBus) In(port byte) byte             { return b.io.In(port) }
func (b *emulatorBus) Out(port byte, v byte)         { b.io.Out(port, v) }
