package computer

import (
	"strconv"
)

// Value is an operand expression, evaluated against a Memory.
type Value interface {
	Evaluate(mem *Memory) (value int64, err error)
	String() string

	isValue()
}

// Location is a Value which also designates a writable cell.
// Only Dereference is a Location.
type Location interface {
	Value
	Address(mem *Memory) (address int64, err error)
	Write(mem *Memory, value int64) (err error)

	isLocation()
}

// Immediate is a constant.
type Immediate int64

// AddressOf evaluates to the address of a variable, not its contents.
type AddressOf string

// Dereference evaluates to the contents of the cell addressed by Inner.
type Dereference struct {
	Inner Value
}

// Deref makes a Dereference of inner.
func Deref(inner Value) Dereference {
	return Dereference{Inner: inner}
}

// Var is the location of a named variable, [name].
func Var(name string) Dereference {
	return Dereference{Inner: AddressOf(name)}
}

func (Immediate) isValue()   {}
func (AddressOf) isValue()   {}
func (Dereference) isValue() {}

func (Dereference) isLocation() {}

func (imm Immediate) Evaluate(mem *Memory) (value int64, err error) {
	value = int64(imm)
	return
}

func (imm Immediate) String() string {
	return strconv.FormatInt(int64(imm), 10)
}

func (addr AddressOf) Evaluate(mem *Memory) (value int64, err error) {
	return mem.Resolve(string(addr))
}

func (addr AddressOf) String() string {
	return string(addr)
}

func (deref Dereference) Evaluate(mem *Memory) (value int64, err error) {
	address, err := deref.Address(mem)
	if err != nil {
		return
	}

	return mem.Read(address)
}

// Address evaluates Inner, without reading the cell it designates.
func (deref Dereference) Address(mem *Memory) (address int64, err error) {
	if deref.Inner == nil {
		err = ErrOperandMissing
		return
	}

	return deref.Inner.Evaluate(mem)
}

func (deref Dereference) Write(mem *Memory, value int64) (err error) {
	address, err := deref.Address(mem)
	if err != nil {
		return
	}

	return mem.Write(address, value)
}

func (deref Dereference) String() string {
	if deref.Inner == nil {
		return "[]"
	}

	return "[" + deref.Inner.String() + "]"
}
