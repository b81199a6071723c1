// iobus.go - Port-addressed I/O bus (§4.3): sense switches, scroll
// register, keyboard FIFO, the two cassette tape drives and the optional
// serial passthrough. Grounded on original_source/io8080.py's output()/
// input() dispatch, reshaped as Go methods satisfying the CPU's Bus
// interface alongside Memory.

package sol20

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// IOBus implements Bus for every port except memory-mapped reads/writes,
// which are served directly by Memory.
type IOBus struct {
	senseSwitches byte
	scrollLine    byte

	keyMu    sync.Mutex
	keyBuf   [keyBufferSize]byte
	keyHead  int
	keyCount int

	tape1, tape2 []byte
	tapeSelect   int // 0 = none, 1 or 2
	tapeHead     int
	tapeOn       bool
	tapeOut      []byte

	tapeScriptPaths [2]string

	serial SerialPort
	logger *log.Logger
}

// NewIOBus constructs an IOBus from cfg, loading both tape scripts.
func NewIOBus(cfg Config) *IOBus {
	logger := cfg.Logger
	if logger == nil {
		logger = defaultLogger
	}
	b := &IOBus{
		senseSwitches:   cfg.SenseSwitches,
		tapeScriptPaths: cfg.TapeScriptPaths,
		serial:          cfg.Serial,
		logger:          logger,
	}
	b.tape1 = LoadTapeScript(cfg.TapeScriptPaths[0], logger)
	b.tape2 = LoadTapeScript(cfg.TapeScriptPaths[1], logger)
	return b
}

// currentTape returns the byte slice the active drive reads from, or nil
// if no drive is selected.
func (b *IOBus) currentTape() []byte {
	switch b.tapeSelect {
	case 1:
		return b.tape1
	case 2:
		return b.tape2
	default:
		return nil
	}
}

// In dispatches a port read (§4.3 "Input ports").
func (b *IOBus) In(port byte) byte {
	switch port {
	case PortSenseSwitches:
		return b.senseSwitches
	case PortScroll:
		return scrollOK
	case PortKeyboardData:
		return b.popKey()
	case PortStatus:
		return b.statusByte()
	case PortTapeData:
		return b.readTapeByte()
	case PortSerialControl:
		if b.serial == nil {
			return 0
		}
		result := byte(serialTransmitReady)
		if b.serial.StatusReady() {
			result |= serialDataReady
		}
		return result
	case PortSerialData:
		if b.serial == nil {
			return 0
		}
		v, ok := b.serial.ReadByte()
		if !ok {
			return 0
		}
		return v
	default:
		return 0
	}
}

// Out dispatches a port write (§4.3 "Output ports").
func (b *IOBus) Out(port byte, v byte) {
	switch port {
	case PortScroll:
		b.scrollLine = v & 0x0F
	case PortStatus:
		b.tapeControl(v)
	case PortTapeData:
		b.tapeOut = append(b.tapeOut, v)
	case PortSerialControl:
		b.logger.Printf("iobus: serial control write %#02x", v)
	case PortSerialData:
		if b.serial != nil {
			b.serial.WriteByte(v)
		}
	default:
		// All other ports: writes discarded (§4.3).
	}
}

// statusByte composes the status register: bit 0 KDR is the inverted
// keyboard-empty flag; bits 6/7 (TDR, TTBE) both track whether the
// selected tape still has unread bytes (§4.3, §9 "Port 0xFA").
func (b *IOBus) statusByte() byte {
	var result byte
	if b.keyCount == 0 {
		result |= statusKDR
	}
	tape := b.currentTape()
	if b.tapeHead < len(tape) {
		result |= statusTDR | statusTTBE
	}
	return result
}

// tapeControl implements the tape-control output port: 0x80 selects and
// rewinds drive 1, 0x40 selects and rewinds drive 2, any other value
// deactivates the drive and, if pending output exists, saves it.
func (b *IOBus) tapeControl(v byte) {
	switch v {
	case tapeControlSelect1:
		b.tapeSelect = 1
		b.tapeHead = 0
		b.tapeOut = b.tapeOut[:0]
		b.tapeOn = true
	case tapeControlSelect2:
		b.tapeSelect = 2
		b.tapeHead = 0
		b.tapeOut = b.tapeOut[:0]
		b.tapeOn = true
	default:
		if b.tapeOn && len(b.tapeOut) > 0 {
			b.saveProgram()
		}
		b.tapeOn = false
	}
}

func (b *IOBus) readTapeByte() byte {
	tape := b.currentTape()
	if b.tapeHead >= len(tape) {
		return 0
	}
	v := tape[b.tapeHead]
	b.tapeHead++
	return v
}

// saveProgram implements §4.4 "Saving": find the embedded program name in
// tape_out, write it to `<NAME>.HEX` beside the tape script, register it
// in the script if it is not already referenced, then reload the tape.
func (b *IOBus) saveProgram() {
	scriptPath := b.tapeScriptPaths[b.tapeSelect-1]
	name := extractSavedProgramName(b.tapeOut)
	if name == "" || scriptPath == "" {
		b.logger.Printf("iobus: tape save skipped, no program name or script path")
		return
	}

	hexName := name + ".HEX"
	hexPath := filepath.Join(filepath.Dir(scriptPath), hexName)

	if err := os.WriteFile(hexPath, b.tapeOut, 0o644); err != nil {
		b.logger.Printf("iobus: writing %s: %v", hexPath, err)
		return
	}
	if err := appendScriptFileLineIfMissing(scriptPath, hexName); err != nil {
		b.logger.Printf("iobus: updating %s: %v", scriptPath, err)
		return
	}

	reloaded := LoadTapeScript(scriptPath, b.logger)
	switch b.tapeSelect {
	case 1:
		b.tape1 = reloaded
	case 2:
		b.tape2 = reloaded
	}
}

// popKey returns and removes the oldest buffered key, or 0 if the FIFO is
// empty (§4.3: "undefined per hardware; implementations should return
// 0"). Guarded by keyMu since BufferKey may run on another goroutine (§5).
func (b *IOBus) popKey() byte {
	b.keyMu.Lock()
	defer b.keyMu.Unlock()
	if b.keyCount == 0 {
		return 0
	}
	v := b.keyBuf[b.keyHead]
	b.keyHead = (b.keyHead + 1) % keyBufferSize
	b.keyCount--
	return v
}

// BufferKey appends code to the keyboard FIFO, dropping it if the FIFO is
// full. This is the sole operation external collaborators may call from
// another goroutine (§5).
func (b *IOBus) BufferKey(code byte) {
	b.keyMu.Lock()
	defer b.keyMu.Unlock()
	if b.keyCount >= keyBufferSize {
		return
	}
	tail := (b.keyHead + b.keyCount) % keyBufferSize
	b.keyBuf[tail] = code
	b.keyCount++
}

// ScrollLine reports the current scroll register value for the frame
// driver (§4.5, §6 "Renderer contract").
func (b *IOBus) ScrollLine() byte { return b.scrollLine }
