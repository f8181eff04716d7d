// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package computer

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

// Computer is the simulation context for running a single Program.
type Computer struct {
	Verbose bool // Set to enable verbose logging.

	Memory *Memory // Cell array and symbol table.
	Flags  Flags   // Zero and sign flags.
	State  State   // Progress through the run.
}

// NewComputer creates a computer with capacity memory cells.
func NewComputer(capacity uint) (comp *Computer) {
	comp = &Computer{
		Memory: NewMemory(capacity),
	}

	return
}

// Defines for the computer.
func (comp *Computer) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"MEMORY_SIZE":   fmt.Sprintf("%v", comp.Memory.Capacity()),
		"MAX_ID_LENGTH": fmt.Sprintf("%v", MAX_ID_LENGTH),
	}
	return maps.All(defines)
}

// String returns the current computer state as a string.
func (comp *Computer) String() (text string) {
	text += fmt.Sprintf("% 7s: %v\n", "state", comp.State)
	text += fmt.Sprintf("% 7s: %v\n", "flags", comp.Flags)
	for name, address := range comp.Memory.Symbols() {
		value, _ := comp.Memory.Read(address)
		text += fmt.Sprintf("% 7s: [%v] %v\n", name, address, value)
	}

	return
}

// Reset the computer state.
// - Zeroes memory and forgets all variables.
// - Clears the flags.
// - Allows Run to be called again.
func (comp *Computer) Reset() {
	if comp.Verbose {
		log.Printf("computer: reset")
	}

	comp.Memory.Reset()
	comp.Flags.Reset()
	comp.setState(STATE_NOT_STARTED)
}

// setState moves the run to state.
func (comp *Computer) setState(state State) {
	if comp.Verbose {
		log.Printf("computer: %v -> %v", comp.State, state)
	}

	comp.State = state
}

// pass makes one linear pass over the program.
func (comp *Computer) pass(prog *Program, phase Phase) (err error) {
	for prog.HasNext() {
		index := prog.Cursor()

		var in Instruction
		in, err = prog.Next()
		if err != nil {
			return
		}

		if comp.Verbose {
			log.Printf("computer: %v %d: %v", phase, index, in)
		}

		switch phase {
		case PHASE_DECLARE:
			err = in.Declare(comp.Memory)
		case PHASE_EXECUTE:
			err = in.Execute(comp.Memory, &comp.Flags)
		}
		if err != nil {
			err = &ErrStep{Phase: phase, Index: index, Instruction: in, Err: err}
			return
		}
	}

	return
}

// Run declares all variables of the program, rewinds it, and then executes
// every instruction in order.
//
// The first failure aborts the run. Memory written before the failure is
// left as is, and the computer must be Reset before it can Run again.
func (comp *Computer) Run(prog *Program) (err error) {
	if comp.State != STATE_NOT_STARTED {
		err = fmt.Errorf("%w: %v", ErrComputerState, comp.State)
		return
	}

	defer func() {
		if err != nil {
			comp.setState(STATE_FAILED)
			if comp.Verbose {
				log.Printf("computer: %v", err)
			}
		}
	}()

	// A shared program may have been left mid-pass.
	prog.Rewind()

	comp.setState(STATE_DECLARING)
	err = comp.pass(prog, PHASE_DECLARE)
	if err != nil {
		return
	}

	prog.Rewind()
	comp.setState(STATE_REWOUND)

	comp.setState(STATE_EXECUTING)
	err = comp.pass(prog, PHASE_EXECUTE)
	if err != nil {
		return
	}

	comp.setState(STATE_DONE)

	if comp.Verbose {
		log.Printf("computer: done, flags %v", comp.Flags)
	}

	return
}

// Dump returns a copy of memory, in address order.
func (comp *Computer) Dump() []int64 {
	return comp.Memory.Dump()
}

// WriteDump writes the memory dump text to w.
func (comp *Computer) WriteDump(w io.Writer) (err error) {
	return WriteDump(w, comp.Memory.cells)
}

// Run runs prog on a new computer of capacity cells, and returns the
// resulting memory.
func Run(capacity uint, prog *Program) (cells []int64, err error) {
	comp := NewComputer(capacity)

	err = comp.Run(prog)
	if err != nil {
		return
	}

	cells = comp.Dump()
	return
}
