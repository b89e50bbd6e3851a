package intcode

import "errors"

var (
	// ErrBadOpcode indicates an instruction with an unknown opcode.
	ErrBadOpcode = errors.New("intcode: unknown opcode")

	// ErrBadMode indicates an unknown parameter mode, or immediate mode on a write.
	ErrBadMode = errors.New("intcode: invalid parameter mode")

	// ErrBadAddress indicates access to a negative address.
	ErrBadAddress = errors.New("intcode: negative address")

	// ErrHalted is returned when Run is called on a halted machine.
	ErrHalted = errors.New("intcode: machine halted")
)

// State describes why Run returned.
type State int

const (
	// Ready means the machine has not run yet or was just given input.
	Ready State = iota
	// NeedsInput means an input instruction found the queue empty.
	NeedsInput
	// Halted means opcode 99 was executed.
	Halted
)

func (s State) String() string {
	switch s {
	case NeedsInput:
		return "needs-input"
	case Halted:
		return "halted"
	}
	return "ready"
}

const (
	opAdd     = 1
	opMul     = 2
	opIn      = 3
	opOut     = 4
	opJumpT   = 5
	opJumpF   = 6
	opLess    = 7
	opEquals  = 8
	opRelBase = 9
	opHalt    = 99
)
