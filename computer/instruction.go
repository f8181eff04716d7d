package computer

import (
	"errors"
	"strings"
)

// Instruction is a single program statement.
//
// Which fields are used depends on Op:
//   - OP_DATA: Name and Src (the initializer).
//   - OP_MOV, OP_ADD, OP_SUB: Dst and Src.
//   - OP_INC, OP_DEC: Dst, and Src is always Immediate(1).
//   - OP_ONE, OP_ONES, OP_ONEZ: Dst only.
type Instruction struct {
	Op   Opcode
	Name string
	Dst  Location
	Src  Value
}

// Declare declares a variable named name, initialized from init.
func Declare(name string, init Value) Instruction {
	return Instruction{Op: OP_DATA, Name: name, Src: init}
}

// Move copies src to dst.
func Move(dst Location, src Value) Instruction {
	return Instruction{Op: OP_MOV, Dst: dst, Src: src}
}

// Add adds src to dst, and sets the flags.
func Add(dst Location, src Value) Instruction {
	return Instruction{Op: OP_ADD, Dst: dst, Src: src}
}

// Sub subtracts src from dst, and sets the flags.
func Sub(dst Location, src Value) Instruction {
	return Instruction{Op: OP_SUB, Dst: dst, Src: src}
}

// Increment is Add(dst, Immediate(1)).
func Increment(dst Location) Instruction {
	return Instruction{Op: OP_INC, Dst: dst, Src: Immediate(1)}
}

// Decrement is Sub(dst, Immediate(1)).
func Decrement(dst Location) Instruction {
	return Instruction{Op: OP_DEC, Dst: dst, Src: Immediate(1)}
}

// SetOne stores 1 in dst.
func SetOne(dst Location) Instruction {
	return Instruction{Op: OP_ONE, Dst: dst}
}

// SetOneIfSigned stores 1 in dst if the sign flag is set.
func SetOneIfSigned(dst Location) Instruction {
	return Instruction{Op: OP_ONES, Dst: dst}
}

// SetOneIfZero stores 1 in dst if the zero flag is set.
func SetOneIfZero(dst Location) Instruction {
	return Instruction{Op: OP_ONEZ, Dst: dst}
}

// operands checks that the operands Op uses are present.
func (in Instruction) operands() (err error) {
	switch in.Op {
	case OP_DATA:
		if in.Src == nil {
			err = ErrOperandMissing
		}
	case OP_MOV, OP_ADD, OP_SUB, OP_INC, OP_DEC:
		if in.Dst == nil || in.Src == nil {
			err = ErrOperandMissing
		}
	case OP_ONE, OP_ONES, OP_ONEZ:
		if in.Dst == nil {
			err = ErrOperandMissing
		}
	}

	return
}

// Declare performs the declaration pass effect. Only OP_DATA has one.
func (in Instruction) Declare(mem *Memory) (err error) {
	if in.Op != OP_DATA {
		return
	}

	err = in.operands()
	if err != nil {
		return
	}

	value, err := in.Src.Evaluate(mem)
	if err != nil {
		return
	}

	_, err = mem.Declare(in.Name, value)
	return
}

// Execute performs the execution pass effect. OP_DATA has none.
func (in Instruction) Execute(mem *Memory, flags *Flags) (err error) {
	err = in.operands()
	if err != nil {
		return
	}

	switch in.Op {
	case OP_DATA:
		// pass
	case OP_MOV:
		var value int64
		value, err = in.Src.Evaluate(mem)
		if err != nil {
			return
		}
		err = in.Dst.Write(mem, value)
	case OP_ADD, OP_INC, OP_SUB, OP_DEC:
		var input, value int64
		input, err = in.Dst.Evaluate(mem)
		if err != nil {
			return
		}
		value, err = in.Src.Evaluate(mem)
		if err != nil {
			return
		}
		var output int64
		if in.Op == OP_ADD || in.Op == OP_INC {
			output = input + value
		} else {
			output = input - value
		}
		flags.Update(output)
		err = in.Dst.Write(mem, output)
	case OP_ONE:
		err = in.Dst.Write(mem, 1)
	case OP_ONES:
		if flags.IsSigned() {
			err = in.Dst.Write(mem, 1)
		}
	case OP_ONEZ:
		if flags.IsZero() {
			err = in.Dst.Write(mem, 1)
		}
	default:
		err = errors.Join(ErrOpcodeInvalid, errors.New(in.Op.String()))
	}

	return
}

// String renders the instruction in assembler syntax.
func (in Instruction) String() string {
	words := []string{in.Op.String()}

	switch in.Op {
	case OP_DATA:
		words = append(words, in.Name)
		if in.Src != nil {
			words = append(words, in.Src.String())
		}
	case OP_MOV, OP_ADD, OP_SUB:
		if in.Dst != nil {
			words = append(words, in.Dst.String())
		}
		if in.Src != nil {
			words = append(words, in.Src.String())
		}
	default:
		if in.Dst != nil {
			words = append(words, in.Dst.String())
		}
	}

	return strings.Join(words, " ")
}
