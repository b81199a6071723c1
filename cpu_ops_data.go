// cpu_ops_data.go - Data movement opcode family (§4.2 "Data movement"):
// MOV, MVI, LXI, LDA/STA, LDAX/STAX, LHLD/SHLD, XCHG, XTHL, SPHL, PUSH/POP.

package sol20

func (c *CPU) opMOV(dest, src byte) {
	c.writeReg8(dest, c.readReg8(src))
	if dest == 6 || src == 6 {
		c.tick(7)
	} else {
		c.tick(5)
	}
}

func (c *CPU) opMVI(dest byte) {
	v := c.fetchByte()
	c.writeReg8(dest, v)
	if dest == 6 {
		c.tick(10)
	} else {
		c.tick(7)
	}
}

func (c *CPU) opLXI(rp byte) {
	c.rpSet(rp, c.fetchWord())
	c.tick(10)
}

func (c *CPU) opLDA() {
	addr := c.fetchWord()
	c.A = c.readByte(addr)
	c.tick(13)
}

func (c *CPU) opSTA() {
	addr := c.fetchWord()
	c.writeByte(addr, c.A)
	c.tick(13)
}

func (c *CPU) opLDAXB() {
	c.A = c.readByte(c.BC())
	c.tick(7)
}

func (c *CPU) opLDAXD() {
	c.A = c.readByte(c.DE())
	c.tick(7)
}

func (c *CPU) opSTAXB() {
	c.writeByte(c.BC(), c.A)
	c.tick(7)
}

func (c *CPU) opSTAXD() {
	c.writeByte(c.DE(), c.A)
	c.tick(7)
}

func (c *CPU) opLHLD() {
	addr := c.fetchWord()
	c.L = c.readByte(addr)
	c.H = c.readByte(addr + 1)
	c.tick(16)
}

func (c *CPU) opSHLD() {
	addr := c.fetchWord()
	c.writeByte(addr, c.L)
	c.writeByte(addr+1, c.H)
	c.tick(16)
}

func (c *CPU) opXCHG() {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	c.tick(4)
}

func (c *CPU) opXTHL() {
	lo := c.readByte(c.SP)
	hi := c.readByte(c.SP + 1)
	c.writeByte(c.SP, c.L)
	c.writeByte(c.SP+1, c.H)
	c.L, c.H = lo, hi
	c.tick(18)
}

func (c *CPU) opSPHL() {
	c.SP = c.HL()
	c.tick(5)
}

func (c *CPU) opPUSH(rp byte) {
	c.pushRP(rp)
	c.tick(11)
}

func (c *CPU) opPOP(rp byte) {
	c.popRP(rp)
	c.tick(10)
}

func (c *CPU) opIN() {
	port := c.fetchByte()
	c.A = c.in(port)
	c.tick(10)
}

func (c *CPU) opOUT() {
	port := c.fetchByte()
	c.out(port, c.A)
	c.tick(10)
}
