package assembler

import (
	"fmt"
	"strings"

	"github.com/ezrec/ooasm/computer"
)

// Statement is a single assembled source line.
type Statement struct {
	LineNo      int                  // Source line number.
	Words       []string             // Source words, after substitutions.
	Instruction computer.Instruction // Assembled instruction.
}

// Listing is the result of assembling a source file.
type Listing struct {
	Statements []Statement
}

// Program makes a new program from the listing's instructions.
func (listing *Listing) Program() *computer.Program {
	ins := make([]computer.Instruction, len(listing.Statements))
	for n, stmt := range listing.Statements {
		ins[n] = stmt.Instruction
	}

	return computer.NewProgram(ins...)
}

// LineNo returns the source line of the instruction at index, or 0 if
// there is no such instruction.
func (listing *Listing) LineNo(index int) int {
	if index < 0 || index >= len(listing.Statements) {
		return 0
	}

	return listing.Statements[index].LineNo
}

// String renders the listing as canonical source, one instruction per line,
// annotated with the original line numbers.
func (listing *Listing) String() string {
	var sb strings.Builder
	for _, stmt := range listing.Statements {
		fmt.Fprintf(&sb, "%-24v ; %d\n", stmt.Instruction, stmt.LineNo)
	}
	return sb.String()
}
