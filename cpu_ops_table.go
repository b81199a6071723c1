// cpu_ops_table.go - Builds the 256-entry opcode dispatch table (§4.2
// "Fetch-decode-execute"). Unassigned opcodes behave as NOP (4 cycles),
// grounded on this codebase's initBaseOps pattern: pre-fill with a
// default handler, then overwrite the assigned entries, using loop-
// generated closures for the regular MOV/ALU blocks.

package sol20

// unassignedOpcodes behave as NOP per §4.2.
var unassignedOpcodes = [...]byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD}

func (c *CPU) initOps() {
	for i := range c.ops {
		c.ops[i] = (*CPU).opNOP
	}
	for _, op := range unassignedOpcodes {
		c.ops[op] = (*CPU).opNOP
	}

	// 0x40-0x7F: MOV dest,src, except 0x76 which is HLT.
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dest := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		c.ops[opcode] = func(cpu *CPU) { cpu.opMOV(dest, src) }
	}
	c.ops[0x76] = (*CPU).opHLT

	// 0x80-0xBF: register-addressed ALU ops, eight families of eight.
	aluFamilies := []func(cpu *CPU, x byte){
		func(cpu *CPU, x byte) { cpu.opADD(x) },
		func(cpu *CPU, x byte) { cpu.opADC(x) },
		func(cpu *CPU, x byte) { cpu.opSUB(x) },
		func(cpu *CPU, x byte) { cpu.opSBB(x) },
		func(cpu *CPU, x byte) { cpu.opANA(x) },
		func(cpu *CPU, x byte) { cpu.opXRA(x) },
		func(cpu *CPU, x byte) { cpu.opORA(x) },
		func(cpu *CPU, x byte) { cpu.opCMP(x) },
	}
	for family := 0; family < 8; family++ {
		apply := aluFamilies[family]
		for src := 0; src < 8; src++ {
			opcode := 0x80 + family*8 + src
			s := byte(src)
			c.ops[opcode] = func(cpu *CPU) {
				apply(cpu, cpu.readReg8(s))
				if s == 6 {
					cpu.tick(7)
				} else {
					cpu.tick(4)
				}
			}
		}
	}

	// Column of eight: INR/DCR/MVI share the same destination-register
	// encoding as MOV (dest = row).
	for row := 0; row < 8; row++ {
		dest := byte(row)
		base := row * 8
		c.ops[base+0x04] = func(cpu *CPU) { cpu.opINR(dest) }
		c.ops[base+0x05] = func(cpu *CPU) { cpu.opDCR(dest) }
		c.ops[base+0x06] = func(cpu *CPU) { cpu.opMVI(dest) }
	}

	// Register-pair rows (rp = row/2, 0..3): LXI, INX, DCX, DAD, STAX/LDAX.
	for pairRow := 0; pairRow < 4; pairRow++ {
		rp := byte(pairRow)
		base := pairRow * 16
		c.ops[base+0x01] = func(cpu *CPU) { cpu.opLXI(rp) }
		c.ops[base+0x03] = func(cpu *CPU) { cpu.opINX(rp) }
		c.ops[base+0x09] = func(cpu *CPU) { cpu.opDAD(rp) }
		c.ops[base+0x0B] = func(cpu *CPU) { cpu.opDCX(rp) }
	}

	c.ops[0x02] = (*CPU).opSTAXB
	c.ops[0x0A] = (*CPU).opLDAXB
	c.ops[0x12] = (*CPU).opSTAXD
	c.ops[0x1A] = (*CPU).opLDAXD

	c.ops[0x07] = (*CPU).opRLC
	c.ops[0x0F] = (*CPU).opRRC
	c.ops[0x17] = (*CPU).opRAL
	c.ops[0x1F] = (*CPU).opRAR

	c.ops[0x22] = (*CPU).opSHLD
	c.ops[0x2A] = (*CPU).opLHLD
	c.ops[0x27] = (*CPU).opDAA
	c.ops[0x2F] = (*CPU).opCMA

	c.ops[0x32] = (*CPU).opSTA
	c.ops[0x3A] = (*CPU).opLDA
	c.ops[0x37] = (*CPU).opSTC
	c.ops[0x3F] = (*CPU).opCMC

	// Immediate ALU ops (7 cycles, same as the M-addressed register form).
	c.ops[0xC6] = func(cpu *CPU) { cpu.opADD(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xCE] = func(cpu *CPU) { cpu.opADC(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xD6] = func(cpu *CPU) { cpu.opSUB(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xDE] = func(cpu *CPU) { cpu.opSBB(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xE6] = func(cpu *CPU) { cpu.opANA(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xEE] = func(cpu *CPU) { cpu.opXRA(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xF6] = func(cpu *CPU) { cpu.opORA(cpu.fetchByte()); cpu.tick(7) }
	c.ops[0xFE] = func(cpu *CPU) { cpu.opCMP(cpu.fetchByte()); cpu.tick(7) }

	// Conditional jump/call/return, by condition code cc = (opcode>>3)&7.
	for cc := byte(0); cc < 8; cc++ {
		condition := cc
		c.ops[0xC2+int(cc)*8] = func(cpu *CPU) { cpu.opJcc(condition) }
		c.ops[0xC4+int(cc)*8] = func(cpu *CPU) { cpu.opCcc(condition) }
		c.ops[0xC0+int(cc)*8] = func(cpu *CPU) { cpu.opRcc(condition) }
	}

	c.ops[0xC3] = (*CPU).opJMP
	c.ops[0xCD] = (*CPU).opCALL
	c.ops[0xC9] = (*CPU).opRET
	c.ops[0xE9] = (*CPU).opPCHL

	for n := byte(0); n < 8; n++ {
		rst := n
		c.ops[0xC7+int(n)*8] = func(cpu *CPU) { cpu.opRST(rst) }
	}

	c.ops[0xC1] = func(cpu *CPU) { cpu.opPOP(0) }
	c.ops[0xD1] = func(cpu *CPU) { cpu.opPOP(1) }
	c.ops[0xE1] = func(cpu *CPU) { cpu.opPOP(2) }
	c.ops[0xF1] = func(cpu *CPU) { cpu.opPOP(3) }
	c.ops[0xC5] = func(cpu *CPU) { cpu.opPUSH(0) }
	c.ops[0xD5] = func(cpu *CPU) { cpu.opPUSH(1) }
	c.ops[0xE5] = func(cpu *CPU) { cpu.opPUSH(2) }
	c.ops[0xF5] = func(cpu *CPU) { cpu.opPUSH(3) }

	c.ops[0xD3] = (*CPU).opOUT
	c.ops[0xDB] = (*CPU).opIN

	c.ops[0xE3] = (*CPU).opXTHL
	c.ops[0xEB] = (*CPU).opXCHG
	c.ops[0xF9] = (*CPU).opSPHL

	c.ops[0xF3] = (*CPU).opDI
	c.ops[0xFB] = (*CPU).opEI

	c.ops[0x00] = (*CPU).opNOP
}
