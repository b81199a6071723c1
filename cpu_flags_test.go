package sol20

import "testing"

func TestPackUnpackFlagsRoundTrip(t *testing.T) {
	r := newCPUTestRig()
	r.cpu.S, r.cpu.Z, r.cpu.AC, r.cpu.P, r.cpu.CY = true, false, true, false, true

	packed := r.cpu.packFlags()
	requireEqualU8(t, "pswBit1 always set", packed&pswBit1, pswBit1)

	r.cpu.S, r.cpu.Z, r.cpu.AC, r.cpu.P, r.cpu.CY = false, false, false, false, false
	r.cpu.unpackFlags(packed)

	requireEqualBool(t, "S", r.cpu.S, true)
	requireEqualBool(t, "Z", r.cpu.Z, false)
	requireEqualBool(t, "AC", r.cpu.AC, true)
	requireEqualBool(t, "P", r.cpu.P, false)
	requireEqualBool(t, "CY", r.cpu.CY, true)
}

func TestPushPopPSWViaOpcodes(t *testing.T) {
	r := newCPUTestRig()
	r.load(0x0000, []byte{0xF5, 0xC1}) // PUSH PSW; POP B (picks up A into B, flags into C)
	r.cpu.SP = 0x8000
	r.cpu.A = 0x3C
	r.cpu.S, r.cpu.Z, r.cpu.CY = true, false, true

	r.cpu.Step() // PUSH PSW
	r.cpu.A = 0  // clobber so POP has to restore it
	r.cpu.Step() // POP B

	requireEqualU8(t, "B (restored A)", r.cpu.B, 0x3C)
	if r.cpu.C&flagS == 0 || r.cpu.C&flagCY == 0 {
		t.Fatalf("C (restored flag byte) = 0x%02X, missing S or CY", r.cpu.C)
	}
}

func TestPushPopPSWRestoresFlags(t *testing.T) {
	r := newCPUTestRig()
	r.load(0x0000, []byte{0xF5, 0xF1}) // PUSH PSW; POP PSW
	r.cpu.SP = 0x8000
	r.cpu.A = 0x12
	r.cpu.S, r.cpu.Z, r.cpu.AC, r.cpu.P, r.cpu.CY = true, true, false, true, false

	r.cpu.Step()
	r.cpu.A, r.cpu.S, r.cpu.Z, r.cpu.AC, r.cpu.P, r.cpu.CY = 0, false, false, false, false, false
	r.cpu.Step()

	requireEqualU8(t, "A", r.cpu.A, 0x12)
	requireEqualBool(t, "S", r.cpu.S, true)
	requireEqualBool(t, "Z", r.cpu.Z, true)
	requireEqualBool(t, "P", r.cpu.P, true)
	requireEqualBool(t, "CY", r.cpu.CY, false)
}

func TestRegisterPairAliasing(t *testing.T) {
	r := newCPUTestRig()
	r.cpu.B, r.cpu.C = 0x12, 0x34
	requireEqualU16(t, "BC", r.cpu.BC(), 0x1234)

	r.cpu.SetHL(0xBEEF)
	requireEqualU8(t, "H", r.cpu.H, 0xBE)
	requireEqualU8(t, "L", r.cpu.L, 0xEF)
}
