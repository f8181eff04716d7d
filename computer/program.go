package computer

import (
	"iter"
	"slices"
)

// Program is a fixed sequence of instructions with a read cursor.
type Program struct {
	instructions []Instruction
	cursor       int
}

// NewProgram makes a program from instructions, in order.
func NewProgram(instructions ...Instruction) (prog *Program) {
	prog = &Program{
		instructions: slices.Clone(instructions),
	}

	return
}

// Len is the number of instructions.
func (prog *Program) Len() int {
	return len(prog.instructions)
}

// Cursor is the index of the instruction Next will return.
func (prog *Program) Cursor() int {
	return prog.cursor
}

// HasNext reports whether Next has an instruction to return.
func (prog *Program) HasNext() bool {
	return prog.cursor < len(prog.instructions)
}

// Next returns the instruction at the cursor, and advances it.
func (prog *Program) Next() (in Instruction, err error) {
	if !prog.HasNext() {
		err = ErrEndOfProgram
		return
	}

	in = prog.instructions[prog.cursor]
	prog.cursor++

	return
}

// Rewind moves the cursor back to the first instruction.
func (prog *Program) Rewind() {
	prog.cursor = 0
}

// All iterates over the instructions, ignoring the cursor.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return slices.All(prog.instructions)
}
