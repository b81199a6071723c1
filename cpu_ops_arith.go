// cpu_ops_arith.go - Arithmetic opcode family: ADD/ADC/SUB/SBB/CMP,
// INR/DCR, DAD, DAA (§4.2 "Arithmetic", binding flag rules).

package sol20

// setSZP updates S, Z and P from an 8-bit result (§4.2: "For all 8-bit
// results r: Z = (r == 0); S = bit7(r); P = even_parity(r)").
func (c *CPU) setSZP(r byte) {
	c.Z = r == 0
	c.S = r&0x80 != 0
	c.P = evenParity(r)
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// add8 implements ADD/ADC flag rules and returns the masked sum.
func (c *CPU) add8(a, x, carryIn byte) byte {
	sum := uint16(a) + uint16(x) + uint16(carryIn)
	r := byte(sum)
	c.setSZP(r)
	c.AC = (a&0x0F)+(x&0x0F)+carryIn > 0x0F
	c.CY = sum > 0xFF
	return r
}

// sub8 implements SUB/SBB/CMP flag rules. CMP calls this with store=false
// so only flags are written, matching "CMP computes the subtraction but
// discards the result, writing only flags."
func (c *CPU) sub8(a, x, carryIn byte, store bool) byte {
	diff := int(a) - int(x) - int(carryIn)
	r := byte(diff)
	c.setSZP(r)
	c.CY = diff < 0
	c.AC = (int(a&0x0F) - int(x&0x0F) - int(carryIn)) >= 0
	if store {
		return r
	}
	return a
}

func (c *CPU) and8(a, x byte) byte {
	r := a & x
	c.setSZP(r)
	c.CY = false
	c.AC = (a|x)&0x08 != 0 // 8080 quirk (§4.2)
	return r
}

func (c *CPU) or8(a, x byte) byte {
	r := a | x
	c.setSZP(r)
	c.CY = false
	c.AC = false
	return r
}

func (c *CPU) xor8(a, x byte) byte {
	r := a ^ x
	c.setSZP(r)
	c.CY = false
	c.AC = false
	return r
}

// incr implements INR: updates S, Z, P, AC; CY is untouched.
func (c *CPU) incr(v byte) byte {
	r := v + 1
	c.setSZP(r)
	c.AC = (v&0x0F)+1 > 0x0F
	return r
}

// decr implements DCR: updates S, Z, P, AC; CY is untouched. AC is set
// iff no borrow from bit 4, the standard 8080 definition; for a decrement
// by one this is the same test as (v & 0x0F) > 0.
func (c *CPU) decr(v byte) byte {
	r := v - 1
	c.setSZP(r)
	c.AC = int(v&0x0F)-1 >= 0
	return r
}

func (c *CPU) carryIn() byte {
	return boolToByte(c.CY)
}

func (c *CPU) opADD(x byte) { c.A = c.add8(c.A, x, 0) }
func (c *CPU) opADC(x byte) { c.A = c.add8(c.A, x, c.carryIn()) }
func (c *CPU) opSUB(x byte) { c.A = c.sub8(c.A, x, 0, true) }
func (c *CPU) opSBB(x byte) { c.A = c.sub8(c.A, x, c.carryIn(), true) }
func (c *CPU) opCMP(x byte) { c.sub8(c.A, x, 0, false) }
func (c *CPU) opANA(x byte) { c.A = c.and8(c.A, x) }
func (c *CPU) opXRA(x byte) { c.A = c.xor8(c.A, x) }
func (c *CPU) opORA(x byte) { c.A = c.or8(c.A, x) }

// opDAA implements decimal-adjust-accumulator per §4.2's binding rule.
func (c *CPU) opDAA() {
	a := c.A
	cy := c.CY
	correction := byte(0)

	if a&0x0F > 9 || c.AC {
		correction |= 0x06
	}
	highNibble := a >> 4
	lowNibble := a & 0x0F
	if highNibble > 9 || cy || (highNibble >= 9 && lowNibble > 9) {
		correction |= 0x60
		cy = true
	}

	sum := uint16(a) + uint16(correction)
	r := byte(sum)
	c.AC = (a&0x0F)+(correction&0x0F) > 0x0F
	c.A = r
	c.setSZP(r)
	c.CY = cy
	c.tick(4)
}

func (c *CPU) dadAddHL(v uint16) {
	sum := uint32(c.HL()) + uint32(v)
	c.CY = sum > 0xFFFF
	c.SetHL(uint16(sum))
}
