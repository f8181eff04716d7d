package computer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Immediate(t *testing.T) {
	assert := assert.New(t)

	value, err := Immediate(-7).Evaluate(nil)
	assert.NoError(err)
	assert.Equal(int64(-7), value)
	assert.Equal("-7", Immediate(-7).String())
}

func TestValue_AddressOf(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)
	_, err := mem.Declare("a", 100)
	assert.NoError(err)
	_, err = mem.Declare("b", 200)
	assert.NoError(err)

	value, err := AddressOf("b").Evaluate(mem)
	assert.NoError(err)
	assert.Equal(int64(1), value)
	assert.Equal("b", AddressOf("b").String())

	_, err = AddressOf("c").Evaluate(mem)
	assert.True(errors.Is(err, ErrVariableUnknown))
}

func TestValue_Dereference(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)
	_, err := mem.Declare("a", 100)
	assert.NoError(err)

	value, err := Var("a").Evaluate(mem)
	assert.NoError(err)
	assert.Equal(int64(100), value)

	address, err := Var("a").Address(mem)
	assert.NoError(err)
	assert.Equal(int64(0), address)

	assert.NoError(Var("a").Write(mem, 101))
	assert.Equal([]int64{101, 0, 0, 0}, mem.Dump())

	assert.Equal("[a]", Var("a").String())
	assert.Equal("[[3]]", Deref(Deref(Immediate(3))).String())
}

func TestValue_Dereference_Nested(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)
	assert.NoError(mem.Write(3, 1))
	assert.NoError(mem.Write(1, 55))

	outer := Deref(Deref(Immediate(3)))

	value, err := outer.Evaluate(mem)
	assert.NoError(err)
	assert.Equal(int64(55), value)

	address, err := outer.Address(mem)
	assert.NoError(err)
	assert.Equal(int64(1), address)

	// Writes land on the cell addressed by cell 3, never cell 3 itself.
	assert.NoError(outer.Write(mem, 9))
	assert.Equal([]int64{0, 9, 0, 1}, mem.Dump())
}

func TestValue_Dereference_Errors(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(2)
	assert.NoError(mem.Write(0, 5))

	_, err := Deref(Immediate(2)).Evaluate(mem)
	assert.True(errors.Is(err, ErrAddressOutOfBounds))

	// Inner read is fine, but its value is not a valid address.
	_, err = Deref(Deref(Immediate(0))).Evaluate(mem)
	assert.True(errors.Is(err, ErrAddressOutOfBounds))

	err = Deref(Deref(Immediate(0))).Write(mem, 1)
	assert.True(errors.Is(err, ErrAddressOutOfBounds))

	err = Var("missing").Write(mem, 1)
	assert.True(errors.Is(err, ErrVariableUnknown))

	// A zero Dereference has nothing to evaluate.
	_, err = Dereference{}.Evaluate(mem)
	assert.True(errors.Is(err, ErrOperandMissing))

	err = Deref(Dereference{}).Write(mem, 1)
	assert.True(errors.Is(err, ErrOperandMissing))
	assert.Equal("[[]]", Deref(Dereference{}).String())

	assert.Equal([]int64{5, 0}, mem.Dump())
}
