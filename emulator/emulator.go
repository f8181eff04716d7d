// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ooasm/assembler"
	"github.com/ezrec/ooasm/computer"
	"github.com/ezrec/ooasm/internal"
)

const (
	MEMORY_SIZE = 16 // Default number of memory cells.
)

var _emulator_defines = map[string]string{
	"DEFAULT_MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Emulator state. Computer + the listing it runs.
type Emulator struct {
	Verbose            bool               // If set, enables verbose logging.
	*computer.Computer                    // Reference to the computer simulation.
	Listing            *assembler.Listing // Reference to the currently loaded program listing.

	defines map[string]string // User defines.
}

// NewEmulator creates a new emulator with capacity memory cells.
func NewEmulator(capacity uint) (emu *Emulator) {
	emu = &Emulator{
		Computer: computer.NewComputer(capacity),
		Listing:  &assembler.Listing{},
	}

	return
}

// Define adds a user define, which overrides any system define of the
// same name.
func (emu *Emulator) Define(name string, value string) {
	if emu.defines == nil {
		emu.defines = map[string]string{name: value}
	} else {
		emu.defines[name] = value
	}
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Computer.Defines(),
		maps.All(emu.defines),
	)
}

// Assemble parses source into the emulator's listing, with the emulator
// defines available as equates.
func (emu *Emulator) Assemble(source io.Reader) (err error) {
	asm := &assembler.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	listing, err := asm.Parse(source)
	if err != nil {
		return
	}

	emu.Listing = listing
	return
}

// Reset the computer state, so the listing can be run again.
func (emu *Emulator) Reset() {
	emu.Computer.Verbose = emu.Verbose
	emu.Computer.Reset()
}

// LineNo returns the source line number of the instruction at index.
func (emu *Emulator) LineNo(index int) int {
	return emu.Listing.LineNo(index)
}

// Run runs the listing to completion.
func (emu *Emulator) Run() (err error) {
	emu.Computer.Verbose = emu.Verbose

	defer func() {
		if err == nil {
			return
		}
		var step *computer.ErrStep
		if errors.As(err, &step) {
			err = &ErrRuntime{LineNo: emu.LineNo(step.Index), Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("emulator: run %v instructions", len(emu.Listing.Statements))
	}

	err = emu.Computer.Run(emu.Listing.Program())
	return
}
