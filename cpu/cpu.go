// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
)

const (
	X_RESET = 1 // Value of X after a reset.
)

// Observer is notified once per cycle, with the 1-based cycle number and the
// value of X during that cycle.
type Observer interface {
	Observe(cycle int, x int) (err error)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(cycle int, x int) (err error)

// Observe calls the function.
func (fn ObserverFunc) Observe(cycle int, x int) (err error) {
	return fn(cycle, x)
}

// Cpu is the simulation context for the CRT clock circuit.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip    int // Index of the opcode in flight.
	X     int // Register.
	Cycle int // Completed cycles counter.
	Busy  int // Cycles left on the opcode in flight, 0 if none.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

func (cpu *Cpu) String() (text string) {
	return fmt.Sprintf("ip=%d cycle=%d x=%d busy=%d", cpu.Ip, cpu.Cycle, cpu.X, cpu.Busy)
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Ip = 0
	cpu.X = X_RESET
	cpu.Cycle = 0
	cpu.Busy = 0
}

// step counts one cycle and notifies the observers.
func (cpu *Cpu) step(op Opcode, observers []Observer) (err error) {
	cpu.Cycle++

	if cpu.Verbose {
		log.Printf("cpu: cycle %d: x=%d %v", cpu.Cycle, cpu.X, op)
	}

	for _, obs := range observers {
		err = obs.Observe(cpu.Cycle, cpu.X)
		if err != nil {
			return
		}
	}

	return
}

// FetchCode returns the opcode in flight, fetching the next opcode from the
// program if the previous one has completed.
func (cpu *Cpu) FetchCode(prog *Program) (op Opcode, err error) {
	if cpu.Ip >= len(prog.Opcodes) {
		err = ErrIpEmpty
		return
	}

	op = prog.Opcodes[cpu.Ip]
	if cpu.Busy == 0 {
		cpu.Busy = op.Cycles()
	}

	return
}

// Tick advances the CPU by exactly one cycle. Observers see the cycle before
// the effect of the opcode in flight is applied. Returns ErrIpEmpty once the
// program has been exhausted.
func (cpu *Cpu) Tick(prog *Program, observers ...Observer) (err error) {
	op, err := cpu.FetchCode(prog)
	if err != nil {
		return
	}

	err = cpu.step(op, observers)
	if err != nil {
		return
	}

	cpu.Busy--
	if cpu.Busy <= 0 {
		cpu.Busy = 0
		cpu.X = op.Apply(cpu.X)
		cpu.Ip++
	}

	return
}
