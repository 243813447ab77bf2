package emulator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/crt/cpu"
)

func doAssemble(program []string, t *testing.T) (prog *cpu.Program) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(nil)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Program)
	assert.NoError(emu.Run())
	assert.Equal(0, emu.Cycles())
	assert.Equal(1, emu.X())
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"noop",
		"addx 3",
		"addx -5",
	}

	emu := NewEmulator(doAssemble(program, t))
	emu.Reset()

	var xs []int
	obs := cpu.ObserverFunc(func(cycle int, x int) error {
		assert.Equal(len(xs)+1, cycle)
		xs = append(xs, x)
		return nil
	})

	lines := []int{1, 2, 2, 3, 3}
	for n, line := range lines {
		done, err := emu.Tick(obs)
		assert.NoError(err)
		assert.False(done)
		assert.Equal(n+1, emu.Cycles())
		assert.Equal(line, emu.LineNo(emu.Cycles()))
	}

	done, err := emu.Tick(obs)
	assert.NoError(err)
	assert.True(done)

	assert.Equal([]int{1, 1, 1, 4, 4}, xs)
	assert.Equal(-1, emu.X())
	assert.Equal(5, emu.Cycles())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"noop",
		"noop",
		"addx 2",
	}

	fail := errors.New("fail")
	emu := NewEmulator(doAssemble(program, t))

	err := emu.Run(cpu.ObserverFunc(func(cycle int, x int) error {
		if cycle == 4 {
			return fail
		}
		return nil
	}))

	assert.ErrorIs(err, fail)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(3, rt.LineNo)
		assert.Equal(4, rt.Cycle)
	}
	assert.Equal("line 3 cycle 4 fail", err.Error())
}

func TestEmulatorTrace(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"noop",
		"addx 3",
		"addx -5",
	}

	emu := NewEmulator(doAssemble(program, t))

	var cycles, xs []int
	for cycle, x := range emu.Trace() {
		cycles = append(cycles, cycle)
		xs = append(xs, x)
	}
	assert.Equal([]int{1, 2, 3, 4, 5}, cycles)
	assert.Equal([]int{1, 1, 1, 4, 4}, xs)
	assert.Equal(-1, emu.X())

	// Early exit from the trace.
	count := 0
	for range emu.Trace() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
	assert.Equal(2, emu.Cycles())
}

func TestEmulatorRepeatable(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"addx 15",
		"addx -11",
		"noop",
		"addx 6",
		"addx -3",
	}

	emu := NewEmulator(doAssemble(program, t))

	var first, second []int
	assert.NoError(emu.Run(cpu.ObserverFunc(func(cycle int, x int) error {
		first = append(first, cycle*x)
		return nil
	})))
	assert.NoError(emu.Run(cpu.ObserverFunc(func(cycle int, x int) error {
		second = append(second, cycle*x)
		return nil
	})))

	assert.Equal(first, second)
	assert.Equal(9, len(first))
	assert.Equal(8, emu.X())
}
