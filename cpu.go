// cpu.go - 8080 CPU state, fetch-decode-execute loop and register-pair
// accessors. Grounded on this codebase's Z80 core: a flat register
// struct, a 256-entry function-pointer dispatch table, and small fetch/
// read/write/tick helpers shared by every opcode handler.

package sol20

import "fmt"

// Bus is the interface the CPU drives for memory and port access. IOBus
// plus Memory together satisfy it; tests commonly supply a smaller fake.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
	In(port byte) byte
	Out(port byte, v byte)
}

// CPU is the 8080 interpreter (§3 "CPU state", §4.2).
type CPU struct {
	A, B, C, D, E, H, L byte

	PC uint16
	SP uint16

	S, Z, AC, P, CY bool
	IE              bool

	currentOpcode byte
	cycles        uint64
	Instructions  uint64

	Halted bool

	interruptAlternate bool // false -> next interrupt uses 0x10, true -> 0x08

	bus Bus

	ops [256]func(*CPU)
}

// NewCPU returns a CPU wired to bus with the dispatch table built and an
// architectural reset already applied.
func NewCPU(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.initOps()
	c.Reset()
	return c
}

// Reset restores architectural state (§3: SP initialised to 0xF000, PC to
// 0, flags and registers cleared).
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.PC = 0
	c.SP = InitialSP
	c.S, c.Z, c.AC, c.P, c.CY = false, false, false, false, false
	c.IE = false
	c.currentOpcode = 0
	c.cycles = 0
	c.Instructions = 0
	c.Halted = false
	c.interruptAlternate = false
}

// Register pair views (§3: "the pair view and the half views are always
// mutually consistent"). BC/DE/HL are never stored independently of their
// 8-bit halves; every pair access composes or decomposes on the fly.

func (c *CPU) BC() uint16 { return pair(c.B, c.C) }
func (c *CPU) DE() uint16 { return pair(c.D, c.E) }
func (c *CPU) HL() uint16 { return pair(c.H, c.L) }

func (c *CPU) SetBC(v uint16) { c.B, c.C = high(v), low(v) }
func (c *CPU) SetDE(v uint16) { c.D, c.E = high(v), low(v) }
func (c *CPU) SetHL(v uint16) { c.H, c.L = high(v), low(v) }

func pair(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }
func high(v uint16) byte      { return byte(v >> 8) }
func low(v uint16) byte       { return byte(v) }

// Step executes exactly one instruction: fetch, dispatch, tick. After the
// instruction completes it checks for the end-of-frame interrupt point
// (§4.2 "Interrupt servicing"). Interrupts are polled only at instruction
// boundaries (§5) and never preempt mid-instruction. Once Halted is set
// by HLT, Step is a no-op: HLT is a hard stop, not the real 8080's
// wake-on-interrupt halt state (see cpu_interrupt.go).
func (c *CPU) Step() {
	if c.Halted {
		return
	}

	opcode := c.fetchByte()
	c.currentOpcode = opcode
	handler := c.ops[opcode]
	if handler == nil {
		panic(newCoreError(ErrDecodeFault, fmt.Sprintf("opcode 0x%02X has no dispatch entry", opcode)))
	}
	handler(c)
	c.Instructions++
	c.serviceInterruptIfDue()
}

// RunCycles steps the CPU until at least n cycles have been consumed
// since the call began, or the CPU halts.
func (c *CPU) RunCycles(n uint64) {
	var consumed uint64
	for consumed < n && !c.Halted {
		before := c.cycles
		c.Step()
		if c.cycles < before {
			consumed += c.cycles + MaxCycles - before
		} else {
			consumed += c.cycles - before
		}
	}
}

// RunFrame executes one frame quantum (§4.5): steps until the running
// cycle count has reached MaxCycles since the last frame boundary,
// servicing at most the one interrupt that boundary crossing triggers.
// The crossing and the interrupt are both handled inside Step via
// serviceInterruptIfDue, so RunFrame is simply "step until cycles wrap".
func (c *CPU) RunFrame() {
	for !c.Halted {
		before := c.cycles
		c.Step()
		if c.cycles < before {
			return
		}
	}
}

func (c *CPU) fetchByte() byte {
	v := c.bus.ReadByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return pair(hi, lo)
}

func (c *CPU) readByte(addr uint16) byte { return c.bus.ReadByte(addr) }

func (c *CPU) writeByte(addr uint16, v byte) { c.bus.WriteByte(addr, v) }

func (c *CPU) in(port byte) byte { return c.bus.In(port) }
func (c *CPU) out(port, v byte)  { c.bus.Out(port, v) }

func (c *CPU) tick(n int) { c.cycles += uint64(n) }

// push writes v onto the stack, SP -= 2 first (§4.2 "Stack discipline").
// SP wraps modulo 65536; no range check is performed (§3, §7).
func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.writeByte(c.SP, low(v))
	c.writeByte(c.SP+1, high(v))
}

// pop reads a word off the stack and advances SP by 2.
func (c *CPU) pop() uint16 {
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.SP += 2
	return pair(hi, lo)
}
