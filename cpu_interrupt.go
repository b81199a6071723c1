// cpu_interrupt.go - Periodic maskable interrupt servicing (§4.2).

package sol20

// serviceInterruptIfDue implements "After each step(), if cycles >=
// MAX_CYCLES": the cycle counter always wraps at the frame boundary;
// whether an interrupt is actually delivered depends on IE. Vectors
// alternate between 0x08 and 0x10, starting with 0x10 (§3, §8 scenario 6).
//
// HLT is a hard stop, not the real 8080's wake-on-interrupt halt state:
// original_source/cpu.py's _hlt calls exit(0), and §7 describes HLT as
// terminating the CPU outright. This function never clears Halted, and
// once Halted is set Step returns before reaching it, so no interrupt is
// delivered after the HLT instruction's own step; the frame driver is expected to
// stop calling RunFrame once Halted is set (cmd/solcore/main.go does
// this).
func (c *CPU) serviceInterruptIfDue() {
	if c.cycles < MaxCycles {
		return
	}
	c.cycles -= MaxCycles

	if !c.IE {
		return
	}

	vector := uint16(interruptVectorA)
	if c.interruptAlternate {
		vector = interruptVectorB
	}
	c.interruptAlternate = !c.interruptAlternate

	c.push(c.PC)
	c.PC = vector
}
