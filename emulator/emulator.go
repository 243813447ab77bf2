// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/crt/cpu"
)

// Emulator state. A program listing and the CPU running it.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	if prog == nil {
		prog = &cpu.Program{}
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: prog,
	}

	return
}

// Reset the emulator to the start of the program.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emulator: %d opcodes, %d cycles", len(emu.Program.Opcodes), emu.Program.Cycles())
	}
}

// Cycles returns the total cycles since a reset.
func (emu *Emulator) Cycles() int {
	return emu.Cpu.Cycle
}

// X returns the current register value.
func (emu *Emulator) X() int {
	return emu.Cpu.X
}

// LineNo returns the source line number of the opcode executing during a cycle.
func (emu *Emulator) LineNo(cycle int) int {
	dbg := emu.Program.Debug(cycle)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single cycle of the emulator.
func (emu *Emulator) Tick(observers ...cpu.Observer) (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			cycle := emu.Cpu.Cycle
			err = &ErrRuntime{LineNo: emu.LineNo(cycle), Cycle: cycle, Err: err}
		}
	}()

	err = emu.Cpu.Tick(emu.Program, observers...)
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
	}

	return
}

// Run resets the emulator, then runs the program to completion.
func (emu *Emulator) Run(observers ...cpu.Observer) (err error) {
	emu.Reset()

	for done, err := emu.Tick(observers...); !done; done, err = emu.Tick(observers...) {
		if err != nil {
			return err
		}
	}

	return
}

// Trace returns an iterator of the cycle number and the X value during that
// cycle, for a fresh run of the program.
func (emu *Emulator) Trace() iter.Seq2[int, int] {
	return func(yield func(cycle int, x int) bool) {
		stop := errors.New("stop")

		emu.Reset()
		obs := cpu.ObserverFunc(func(cycle int, x int) error {
			if !yield(cycle, x) {
				return stop
			}
			return nil
		})

		for {
			done, err := emu.Tick(obs)
			if done || err != nil {
				return
			}
		}
	}
}
