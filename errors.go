// errors.go - Error kinds for the CORE (§7). The 8080 itself has no
// recoverable exception mechanism, so decode failures and invariant
// violations are fatal; tape I/O problems are absorbed.

package sol20

import (
	"errors"
	"fmt"
)

// ErrDecodeFault indicates Step dispatched on an opcode with no handler.
// initOps fills every one of the 256 dispatch slots (unassigned opcodes
// fall back to NOP per §4.2), so this only fires if a CPU's ops table was
// built some other way; Step panics with a CoreError wrapping it.
var ErrDecodeFault = errors.New("sol20: decode fault")

// ErrInvariantViolation indicates a value observed outside its
// architectural range, such as a tape data block whose trailing checksum
// byte doesn't match (tape.go's DecodeDataBlocks).
var ErrInvariantViolation = errors.New("sol20: invariant violation")

// ErrTapeFileMissing indicates a tape script file could not be opened.
// Not fatal: the tape is treated as empty. A missing `.ent`/`.hex`
// include file is reported with the underlying os error instead.
var ErrTapeFileMissing = errors.New("sol20: tape file missing")

// CoreError wraps one of the sentinel errors above with the context that
// triggered it.
type CoreError struct {
	Err     error
	Context string
}

func (e *CoreError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Context)
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

func newCoreError(sentinel error, context string) *CoreError {
	return &CoreError{Err: sentinel, Context: context}
}
