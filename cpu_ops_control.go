// cpu_ops_control.go - Control flow and machine opcodes (§4.2 "Control",
// "Machine"): JMP/Jcc, CALL/Ccc, RET/Rcc, RST, PCHL, NOP, EI/DI, HLT,
// STC/CMC/CMA, and the INX/DCX/DAD register-pair arithmetic opcodes.

package sol20

// condition decodes the three-bit condition-code field shared by Jcc,
// Ccc and Rcc: 000 NZ, 001 Z, 010 NC, 011 C, 100 PO, 101 PE, 110 P, 111 M.
func (c *CPU) condition(cc byte) bool {
	switch cc {
	case 0:
		return !c.Z
	case 1:
		return c.Z
	case 2:
		return !c.CY
	case 3:
		return c.CY
	case 4:
		return !c.P
	case 5:
		return c.P
	case 6:
		return !c.S
	default:
		return c.S
	}
}

func (c *CPU) opJMP() {
	c.PC = c.fetchWord()
	c.tick(10)
}

// opJcc always costs 10 cycles: the 8080 has no branch-taken penalty
// for conditional jumps (§4.2).
func (c *CPU) opJcc(cc byte) {
	addr := c.fetchWord()
	if c.condition(cc) {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) opCALL() {
	addr := c.fetchWord()
	c.push(c.PC)
	c.PC = addr
	c.tick(17)
}

func (c *CPU) opCcc(cc byte) {
	addr := c.fetchWord()
	if c.condition(cc) {
		c.push(c.PC)
		c.PC = addr
		c.tick(17)
		return
	}
	c.tick(11)
}

func (c *CPU) opRET() {
	c.PC = c.pop()
	c.tick(10)
}

func (c *CPU) opRcc(cc byte) {
	if c.condition(cc) {
		c.PC = c.pop()
		c.tick(11)
		return
	}
	c.tick(5)
}

func (c *CPU) opRST(n byte) {
	c.push(c.PC)
	c.PC = uint16(n) * 8
	c.tick(11)
}

func (c *CPU) opPCHL() {
	c.PC = c.HL()
	c.tick(5)
}

func (c *CPU) opNOP() {
	c.tick(4)
}

func (c *CPU) opHLT() {
	c.Halted = true
	c.tick(7)
}

func (c *CPU) opEI() {
	c.IE = true
	c.tick(4)
}

func (c *CPU) opDI() {
	c.IE = false
	c.tick(4)
}

func (c *CPU) opSTC() {
	c.CY = true
	c.tick(4)
}

func (c *CPU) opCMC() {
	c.CY = !c.CY
	c.tick(4)
}

func (c *CPU) opCMA() {
	c.A = ^c.A
	c.tick(4)
}

func (c *CPU) opINX(rp byte) {
	c.rpSet(rp, c.rpGet(rp)+1)
	c.tick(5)
}

func (c *CPU) opDCX(rp byte) {
	c.rpSet(rp, c.rpGet(rp)-1)
	c.tick(5)
}

func (c *CPU) opDAD(rp byte) {
	c.dadAddHL(c.rpGet(rp))
	c.tick(10)
}

func (c *CPU) opINR(dest byte) {
	c.writeReg8(dest, c.incr(c.readReg8(dest)))
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opDCR(dest byte) {
	c.writeReg8(dest, c.decr(c.readReg8(dest)))
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(5)
	}
}
