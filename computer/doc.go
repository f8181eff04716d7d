// Package computer implements the memory, flags, and two-phase instruction
// executor for the ooasm language.
//
// All state lives in a flat array of signed 64-bit cells. Variables are
// names bound to cell addresses during a declaration pass, and operands are
// expressions over that array: an Immediate constant, the AddressOf a
// variable, or a Dereference of any other expression. Dereference nests to
// any depth and is the only operand that may be written.
//
// A Computer runs a Program twice. The first pass lets every data
// instruction allocate and initialize its variable; the second pass runs
// every other instruction in order, updating the zero and sign flags after
// each arithmetic result.
package computer
