// Command solcore is a headless runner for manual smoke-testing of the
// Sol-20 CORE: it loads a ROM and two tape scripts, runs a fixed number
// of frames with no renderer attached, and reports the instruction count
// and whether the CPU halted. It is not part of the CORE contract
// (SPEC_FULL.md §2).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/solcore/sol20"
)

func main() {
	romPath := flag.String("rom", "", "Monitor ROM image to overlay at 0xC000 (required)")
	tape1 := flag.String("tape1", "", "Tape 1 script path (TAPEs/TAPE1.svt)")
	tape2 := flag.String("tape2", "", "Tape 2 script path (TAPEs/TAPE2.svt)")
	frames := flag.Int("frames", 60, "Number of frames to run")
	senseSwitches := flag.Uint("sense", 0xFF, "Sense switch value")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: solcore -rom monitor.bin [options]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *romPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	rom, err := os.ReadFile(*romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: reading ROM: %v\n", err)
		os.Exit(1)
	}

	cfg := sol20.Config{
		SenseSwitches:   byte(*senseSwitches),
		WatchLow:        sol20.ScreenStart,
		WatchHigh:       sol20.ScreenEnd - 1,
		ROM:             rom,
		TapeScriptPaths: [2]string{*tape1, *tape2},
		Serial:          sol20.NullSerialPort{},
	}

	emu := sol20.NewEmulator(cfg)

	for i := 0; i < *frames; i++ {
		emu.RunFrame(nil)
		if emu.CPU.Halted {
			break
		}
	}

	fmt.Printf("instructions=%d halted=%v\n", emu.CPU.Instructions, emu.CPU.Halted)
}
