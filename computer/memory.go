package computer

import (
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

const (
	MAX_ID_LENGTH = 10 // Longest permitted variable name, in bytes.
)

// Memory is the flat cell array, and the symbol table mapping variable
// names to cell addresses.
type Memory struct {
	cells   []int64          // Cell contents, in address order.
	symbols map[string]int64 // Variable name to address.
	order   []string         // Variable names, in allocation order.
	next    int64            // Next address to allocate.
}

// NewMemory creates a zeroed memory of capacity cells.
func NewMemory(capacity uint) (mem *Memory) {
	mem = &Memory{
		cells:   make([]int64, capacity),
		symbols: make(map[string]int64),
	}

	return
}

// Capacity is the number of addressable cells.
func (mem *Memory) Capacity() int {
	return len(mem.cells)
}

// Allocated is the number of cells bound to variables.
func (mem *Memory) Allocated() int {
	return int(mem.next)
}

// Reset zeroes all cells and forgets all variables.
func (mem *Memory) Reset() {
	clear(mem.cells)
	clear(mem.symbols)
	mem.order = mem.order[:0]
	mem.next = 0
}

// validIdentifier checks the variable naming rule.
func validIdentifier(name string) bool {
	return len(name) > 0 && len(name) <= MAX_ID_LENGTH
}

// Declare allocates the next free cell to name, and stores value in it.
//
// Declaring a name twice allocates a second cell; later lookups resolve
// to the most recent one.
func (mem *Memory) Declare(name string, value int64) (address int64, err error) {
	if !validIdentifier(name) {
		err = &ErrVariable{Name: name, Err: ErrIdentifierInvalid}
		return
	}

	if mem.next >= int64(len(mem.cells)) {
		err = &ErrVariable{Name: name, Err: ErrMemoryOverflow}
		return
	}

	address = mem.next
	mem.cells[address] = value
	mem.symbols[name] = address
	mem.order = append(mem.order, name)
	mem.next++

	return
}

// Resolve returns the address bound to name.
func (mem *Memory) Resolve(name string) (address int64, err error) {
	address, ok := mem.symbols[name]
	if !ok {
		err = &ErrVariable{Name: name, Err: ErrVariableUnknown}
		return
	}

	return
}

// check validates an address against the cell array.
func (mem *Memory) check(address int64) (err error) {
	if address < 0 || address >= int64(len(mem.cells)) {
		err = &ErrAddress{Address: address, Err: ErrAddressOutOfBounds}
	}

	return
}

// Read returns the value stored at address.
func (mem *Memory) Read(address int64) (value int64, err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	value = mem.cells[address]
	return
}

// Write stores value at address.
func (mem *Memory) Write(address int64, value int64) (err error) {
	err = mem.check(address)
	if err != nil {
		return
	}

	mem.cells[address] = value
	return
}

// Dump returns a copy of all cells, in address order.
func (mem *Memory) Dump() []int64 {
	return slices.Clone(mem.cells)
}

// Symbols iterates over the declared variables in allocation order.
// A redeclared name is reported once, at its latest address.
func (mem *Memory) Symbols() iter.Seq2[string, int64] {
	return func(yield func(name string, address int64) bool) {
		for n, name := range mem.order {
			if mem.symbols[name] != int64(n) {
				// Shadowed by a later declaration.
				continue
			}
			if !yield(name, int64(n)) {
				return
			}
		}
	}
}

// String renders the dump text form.
func (mem *Memory) String() string {
	return FormatDump(mem.cells)
}

// FormatDump renders cells as decimal values, each followed by a space.
func FormatDump(cells []int64) string {
	var sb strings.Builder
	for _, cell := range cells {
		sb.WriteString(strconv.FormatInt(cell, 10))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// WriteDump writes the dump text form of cells to w.
func WriteDump(w io.Writer, cells []int64) (err error) {
	_, err = io.WriteString(w, FormatDump(cells))
	return
}
