// config.go - Values an external collaborator (a DIP-switch config file
// parser, out of scope for this CORE) supplies when constructing an
// emulator session.

package sol20

import "log"

// Config groups the construction-time inputs to NewEmulator. It holds no
// file-parsing logic of its own: reading a DIP-switch configuration file
// and handing the CORE a populated Config is an external collaborator's
// job (§1).
type Config struct {
	// SenseSwitches is the value returned by PortSenseSwitches.
	SenseSwitches byte

	// WatchLow, WatchHigh designate the memory-watch window (§4.1). If
	// both are zero the watch window covers nothing and TakeChanged
	// never reports true.
	WatchLow  uint16
	WatchHigh uint16

	// ROM is overlaid onto [ROMStart, ROMEnd] at construction. A ROM
	// image shorter than the window is zero-padded; longer is truncated.
	ROM []byte

	// TapeScriptPaths names the on-disk tape script for each drive
	// (§6, "Tape on-disk format"). An empty path loads an empty tape.
	TapeScriptPaths [2]string

	// Serial is consulted for ports 0xF8/0xF9 when non-nil (§4.9).
	Serial SerialPort

	// Logger receives diagnostic messages for absorbed errors. A nil
	// Logger defaults to the package's stderr logger.
	Logger *log.Logger
}
