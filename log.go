// log.go - Diagnostic logging for conditions the CORE absorbs rather than
// failing on (tape script errors, malformed tape script lines, failed tape
// saves, serial control writes). Accesses to unmapped ports are not
// logged. Grounded on
// this codebase's existing convention of logging unexpected register/port
// access with the standard library logger rather than a third-party
// logging package.

package sol20

import (
	"log"
	"os"
)

var defaultLogger = log.New(os.Stderr, "sol20: ", log.LstdFlags)
