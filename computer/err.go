package computer

import (
	"errors"
	"strconv"

	"github.com/ezrec/ooasm/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrIdentifierInvalid  = errors.New(f("identifier must be 1 to %d characters", MAX_ID_LENGTH))
	ErrMemoryOverflow     = errors.New(f("memory overflow"))
	ErrVariableUnknown    = errors.New(f("variable unknown"))
	ErrAddressOutOfBounds = errors.New(f("address out of bounds"))

	// Program errors
	ErrEndOfProgram   = errors.New(f("end of program"))
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOperandMissing = errors.New(f("operand missing"))
	ErrComputerState  = errors.New(f("computer already run"))
)

// ErrVariable identifies the variable name involved in a failure.
type ErrVariable struct {
	Name string
	Err  error
}

func (err *ErrVariable) Error() string {
	return f("variable '%v' %v", err.Name, err.Err)
}

func (err *ErrVariable) Unwrap() error {
	return err.Err
}

// ErrAddress identifies the address involved in a failure.
type ErrAddress struct {
	Address int64
	Err     error
}

func (err *ErrAddress) Error() string {
	// Addresses read the same as in a dump, without digit grouping.
	return f("address %v %v", strconv.FormatInt(err.Address, 10), err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

// ErrStep locates a failure within a run.
type ErrStep struct {
	Phase       Phase
	Index       int
	Instruction Instruction
	Err         error
}

func (err *ErrStep) Error() string {
	return f("%v #%v '%v' %v", err.Phase, strconv.Itoa(err.Index), err.Instruction, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}
