package cpu

import (
	"fmt"
	"strings"
)

// Op is the type of opcode.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP = Op(0) // noop
	OP_ADDX = Op(1) // addx
)

// opCycles is the number of cycles each opcode occupies.
var opCycles = [...]int{
	OP_NOOP: 1,
	OP_ADDX: 2,
}

// Cycles returns the number of cycles the opcode takes to complete.
func (op Op) Cycles() int {
	if op < 0 || int(op) >= len(opCycles) {
		return 0
	}
	return opCycles[op]
}

// Opcode is a single assembled instruction.
type Opcode struct {
	LineNo int      // Source line number.
	Words  []string // Source words.
	Op     Op       // Operation.
	Arg    int      // Operand; the delta for OP_ADDX.
}

// MakeNoop creates a noop opcode.
func MakeNoop() Opcode {
	return Opcode{Op: OP_NOOP, Words: []string{OP_NOOP.String()}}
}

// MakeAddx creates an addx opcode.
func MakeAddx(delta int) Opcode {
	return Opcode{Op: OP_ADDX, Arg: delta, Words: []string{OP_ADDX.String(), fmt.Sprintf("%d", delta)}}
}

// Cycles returns the number of cycles the opcode takes to complete.
func (op Opcode) Cycles() int {
	return op.Op.Cycles()
}

// Apply applies the opcode effect to the register value.
func (op Opcode) Apply(x int) int {
	switch op.Op {
	case OP_ADDX:
		return x + op.Arg
	}
	return x
}

func (op Opcode) String() string {
	if len(op.Words) > 0 {
		return strings.Join(op.Words, " ")
	}
	switch op.Op {
	case OP_ADDX:
		return fmt.Sprintf("%v %d", op.Op, op.Arg)
	}
	return op.Op.String()
}
