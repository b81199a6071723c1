// tape_script.go - Parses the line-oriented tape script format into an
// on-tape byte stream (§4.4 "Tape script format"), including the external
// `.ent`/`.hex` file forms and the save-back procedure run when the guest
// CPU deactivates a tape with pending output.

package sol20

import (
	"bufio"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OpenTapeScript opens path and parses it into on-tape bytes. If the file
// cannot be opened it returns a CoreError wrapping ErrTapeFileMissing, so
// callers can distinguish that case from a genuine parse error with
// errors.Is (§4.7). An empty path is not an error: it yields an empty
// tape.
func OpenTapeScript(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, newCoreError(ErrTapeFileMissing, err.Error())
	}
	defer f.Close()

	return parseScriptReader(f, filepath.Dir(path))
}

// LoadTapeScript reads path and renders it to on-tape bytes, absorbing
// every error (§4.7): a missing script file is logged and the tape is
// treated as empty; any other error (such as a missing `.ent`/`.hex`
// include) is logged and the bytes parsed before it are returned.
// Malformed lines are logged and skipped by the parser.
func LoadTapeScript(path string, logger *log.Logger) []byte {
	tape, err := OpenTapeScript(path)
	if err == nil {
		return tape
	}
	if errors.Is(err, ErrTapeFileMissing) {
		logger.Printf("tape script %s: missing, treating as empty tape (%v)", path, err)
		return nil
	}
	logger.Printf("tape script %s: %v", path, err)
	return tape
}

// parseScriptReader is the line-oriented interpreter itself, grounded on
// original_source/io8080.py's load_virtual_tape.
func parseScriptReader(f *os.File, baseDir string) ([]byte, error) {
	var tape []byte
	var dataBytes []byte
	processingData := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if processingData && (len(line) == 0 || line[0] != 'D') {
			tape = appendDataBlocks(tape, dataBytes)
			dataBytes = nil
			processingData = false
		}

		if len(line) == 0 || line[0] == ';' {
			continue
		}

		switch line[0] {
		case 'S', 'R', 'L', 'B', 'C':
			continue
		case 'F':
			fields := strings.Fields(line)
			if len(fields) < 2 {
				defaultLogger.Printf("tape script: malformed line skipped: %q", line)
				continue
			}
			fileName := strings.ToLower(fields[1])
			included, err := includeTapeFile(baseDir, fileName)
			if err != nil {
				return tape, err
			}
			tape = append(tape, included...)
		case 'H':
			fields := strings.Fields(line)
			if len(fields) < 6 {
				defaultLogger.Printf("tape script: malformed line skipped: %q", line)
				continue
			}
			name := fields[1]
			ptype := parseHexByte(fields[2])
			size := parseHexWord(fields[3])
			load := parseHexWord(fields[4])
			exec := parseHexWord(fields[5])
			out := appendLeader(nil)
			out = appendHeader(out, name, ptype, size, load, exec)
			tape = append(tape, out...)
		case 'D':
			fields := strings.Fields(line)
			if len(fields) < 2 {
				defaultLogger.Printf("tape script: malformed line skipped: %q", line)
				continue
			}
			hexpairs := fields[1]
			for i := 0; i+1 < len(hexpairs); i += 2 {
				dataBytes = append(dataBytes, parseHexByte(hexpairs[i:i+2]))
			}
			processingData = true
		}
	}
	return tape, scanner.Err()
}

func parseHexByte(s string) byte {
	v, _ := strconv.ParseUint(s, 16, 8)
	return byte(v)
}

func parseHexWord(s string) uint16 {
	v, _ := strconv.ParseUint(s, 16, 16)
	return uint16(v)
}

// includeTapeFile handles the two external file forms referenced by an
// `F` line: `.ent` (a line-addressed program listing) and `.hex` (raw
// tape bytes appended verbatim).
func includeTapeFile(baseDir, fileName string) ([]byte, error) {
	path := filepath.Join(baseDir, fileName)

	if strings.HasSuffix(fileName, ".hex") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}

	if strings.HasSuffix(fileName, ".ent") {
		return parseEntFile(path, fileName)
	}

	return nil, nil
}

// parseEntFile parses a line-addressed `.ent` listing: `E <hex>` sets the
// execution address (and, matching the original engine exactly, the same
// value is used as the load address in the emitted header); other lines
// are `address: b0 b1 ...` hex, assumed contiguous, gaps filled with
// 0x00. The program name is the first five characters of the filename,
// upper-cased, and the type is always 'C'.
func parseEntFile(path, fileName string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fileBytes []byte
	var startAddress uint16
	var oldAddress uint16

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if line[0] == 'E' || line[0] == 'e' {
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				startAddress = uint16(parseHexWord(fields[1]))
			}
			continue
		}
		tokens := strings.SplitN(line, ":", 2)
		if len(tokens) != 2 {
			continue
		}
		address := uint16(parseHexWord(strings.TrimSpace(tokens[0])))
		if oldAddress != 0 && oldAddress != address {
			for a := oldAddress; a < address; a++ {
				fileBytes = append(fileBytes, 0x00)
			}
		}
		for _, tok := range strings.Fields(tokens[1]) {
			tok = strings.ReplaceAll(tok, "/", "")
			fileBytes = append(fileBytes, parseHexByte(tok))
			address++
		}
		oldAddress = address
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	name := strings.ToUpper(strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)))
	if len(name) > 5 {
		name = name[:5]
	}

	var out []byte
	out = appendLeader(out)
	out = appendHeader(out, name, 'C', uint16(len(fileBytes)), startAddress, startAddress)
	out = appendDataBlocks(out, fileBytes)
	return out, nil
}

// extractSavedProgramName scans tape_out for the embedded program name:
// skip bytes < 2 (the leader), then read ASCII characters until the next
// 0x00 (§4.4 "Saving").
func extractSavedProgramName(tapeOut []byte) string {
	i := 0
	for i < len(tapeOut) && tapeOut[i] < 2 {
		i++
	}
	var name strings.Builder
	for i < len(tapeOut) && tapeOut[i] != 0 {
		name.WriteByte(tapeOut[i])
		i++
	}
	return name.String()
}

// appendScriptFileLineIfMissing appends "F <fileName>" to the script at
// scriptPath unless a line already mentions fileName (case-insensitive),
// matching write_saved_program's "has_file_name" scan.
func appendScriptFileLineIfMissing(scriptPath, fileName string) error {
	existing, err := os.ReadFile(scriptPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if strings.Contains(strings.ToUpper(string(existing)), strings.ToUpper(fileName)) {
		return nil
	}

	f, err := os.OpenFile(scriptPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString("\nF " + fileName)
	return err
}
