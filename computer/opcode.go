package computer

// Opcode is the instruction kind.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_DATA = Opcode(0) // data
	OP_MOV  = Opcode(1) // mov
	OP_ADD  = Opcode(2) // add
	OP_SUB  = Opcode(3) // sub
	OP_INC  = Opcode(4) // inc
	OP_DEC  = Opcode(5) // dec
	OP_ONE  = Opcode(6) // one
	OP_ONES = Opcode(7) // ones
	OP_ONEZ = Opcode(8) // onez
)

// Phase is one of the two passes a Computer makes over a Program.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_DECLARE = Phase(0) // declare
	PHASE_EXECUTE = Phase(1) // execute
)

// State is the progress of a Computer through a run.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_NOT_STARTED = State(0) // not started
	STATE_DECLARING   = State(1) // declaring
	STATE_REWOUND     = State(2) // rewound
	STATE_EXECUTING   = State(3) // executing
	STATE_DONE        = State(4) // done
	STATE_FAILED      = State(5) // failed
)
