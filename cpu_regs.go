// cpu_regs.go - 8-bit register and register-pair decode helpers shared by
// the opcode handlers. Register field encoding matches the 8080 opcode
// matrix: B=0 C=1 D=2 E=3 H=4 L=5 M=6 (memory at HL) A=7.

package sol20

func (c *CPU) readReg8(code byte) byte {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.readByte(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) writeReg8(code byte, v byte) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.writeByte(c.HL(), v)
	default:
		c.A = v
	}
}

// rpGet/rpSet decode the two-bit register-pair field used by LXI, DAD,
// INX, DCX (rp encoding: 00=BC 01=DE 10=HL 11=SP).
func (c *CPU) rpGet(rp byte) uint16 {
	switch rp {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func (c *CPU) rpSet(rp byte, v uint16) {
	switch rp {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// pushRP/popRP decode the rp field used by PUSH/POP, where 11 selects
// the PSW (A + flag byte) instead of SP (§4.2 "PSW format").
func (c *CPU) pushRP(rp byte) {
	if rp == 3 {
		c.push(pair(c.A, c.packFlags()))
		return
	}
	c.push(c.rpGet(rp))
}

func (c *CPU) popRP(rp byte) {
	v := c.pop()
	if rp == 3 {
		c.A = high(v)
		c.unpackFlags(low(v))
		return
	}
	c.rpSet(rp, v)
}

// packFlags builds the stacked flag byte: bit7 S, bit6 Z, bit5 0, bit4
// AC, bit3 0, bit2 P, bit1 1 (always), bit0 CY.
func (c *CPU) packFlags() byte {
	var f byte
	if c.S {
		f |= flagS
	}
	if c.Z {
		f |= flagZ
	}
	if c.AC {
		f |= flagAC
	}
	if c.P {
		f |= flagP
	}
	if c.CY {
		f |= flagCY
	}
	f |= pswBit1
	return f
}

func (c *CPU) unpackFlags(f byte) {
	c.S = f&flagS != 0
	c.Z = f&flagZ != 0
	c.AC = f&flagAC != 0
	c.P = f&flagP != 0
	c.CY = f&flagCY != 0
}
