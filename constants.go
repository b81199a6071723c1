// constants.go - Memory map, port map and timing constants for the Sol-20 CORE.

package sol20

// Memory map (§6). ROM is write-protected; everything else is RAM.
const (
	MemSize = 0x10000 // 64 KiB flat address space

	ROMStart = 0xC000
	ROMEnd   = 0xC7FF // inclusive

	ScreenStart = 0xCC00
	ScreenEnd   = 0xD000 // exclusive
	ScreenCols  = 64
	ScreenRows  = 16

	InitialSP = 0xF000
)

// Port map (§4.3). Every access is byte-wide.
const (
	PortSenseSwitches = 0xFF
	PortScroll        = 0xFE
	PortKeyboardData  = 0xFC
	PortStatus        = 0xFA
	PortTapeData      = 0xFB
	PortSerialData    = 0xF9
	PortSerialControl = 0xF8
)

// Status byte bits returned on PortStatus (§4.3, §9).
const (
	statusKDR  = 0x01 // keyboard data ready, inverted: 1 = no key available
	statusTDR  = 0x40 // tape data ready
	statusTTBE = 0x80 // tape transmitter buffer empty
)

// Tape control values written to PortStatus (§4.3).
const (
	tapeControlSelect1 = 0x80
	tapeControlSelect2 = 0x40
)

// Serial status bits returned on PortSerialControl when a SerialPort is
// attached (§4.9): bit 6 data received, bit 7 transmitter always ready
// since writes never block (§5).
const (
	serialDataReady     = 0x40
	serialTransmitReady = 0x80
)

// scrollOK is always returned for the scroll-status input port: the Sol-20
// never refuses a scroll request.
const scrollOK = 0x01

// MaxCycles is the per-frame cycle quantum (§4.2, §4.5).
const MaxCycles = 0x411B

// Interrupt vectors the CPU alternates between at end of frame (§4.2).
const (
	interruptVectorA = 0x10
	interruptVectorB = 0x08
)

// PSW flag byte bit layout (§4.2 "PSW format"). Bits 3 and 5 are always
// zero and carry no named constant.
const (
	flagS  = 0x80
	flagZ  = 0x40
	flagP  = 0x04
	flagCY = 0x01
	flagAC = 0x10

	pswBit1 = 0x02 // always set in the stacked flag byte
)

// keyBufferSize is the depth of the keyboard ring buffer (§3).
const keyBufferSize = 10
