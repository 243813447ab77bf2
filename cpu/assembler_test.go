package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))
	assert.Equal(0, len(asm.Skipped))
}

func TestAssemblerOpcodes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"noop",
		"addx 3",
		"addx -5",
		"addx +7",
		"noop ",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{1, []string{"noop"}, OP_NOOP, 0},
		{2, []string{"addx", "3"}, OP_ADDX, 3},
		{3, []string{"addx", "-5"}, OP_ADDX, -5},
		{4, []string{"addx", "+7"}, OP_ADDX, 7},
		{5, []string{"noop"}, OP_NOOP, 0},
	}

	assert.Equal(expected, prog.Opcodes)
}

func TestAssemblerSingleSpace(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line    string
		opcodes int   // Opcodes assembled, if no error.
		skipped []int // Skipped line numbers, if no error.
		err     error
	}{
		{"noop;junk", 0, []int{1}, nil},
		{"\tnoop", 0, []int{1}, nil},
		{" noop", 0, []int{1}, nil},
		{"noop  ", 1, nil, nil},
		{"addx 3 ", 1, nil, nil},
		{"addx  3", 0, nil, ErrParseNumber("")},
		{"addx 3;x", 0, nil, ErrParseNumber("3;x")},
		{"addx\t3", 0, []int{1}, nil},
		{"addx ", 0, nil, ErrOperandMissing},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(entry.line + "\n"))
		if entry.err != nil {
			assert.Nil(prog, entry.line)
			assert.ErrorIs(err, entry.err, entry.line)

			var syntax *ErrSyntax
			if assert.True(errors.As(err, &syntax), entry.line) {
				assert.Equal(1, syntax.LineNo, entry.line)
				assert.Equal(entry.line, syntax.Line, entry.line)
			}
			continue
		}

		assert.NoError(err, entry.line)
		if prog != nil {
			assert.Equal(entry.opcodes, len(prog.Opcodes), entry.line)
		}
		assert.Equal(entry.skipped, asm.Skipped, entry.line)
	}
}

func TestAssemblerLenient(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Lenient: true}

	program := []string{
		"addx +7 ; comment",
		"  noop  ",
		"\taddx  3",
		"; just a comment",
		"noop;junk",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{1, []string{"addx", "+7"}, OP_ADDX, 7},
		{2, []string{"noop"}, OP_NOOP, 0},
		{3, []string{"addx", "3"}, OP_ADDX, 3},
		{5, []string{"noop"}, OP_NOOP, 0},
	}

	assert.Equal(expected, prog.Opcodes)
	assert.Nil(asm.Skipped)
}

func TestAssemblerPermissive(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"noop",
		"",
		"jmp 4",
		"addx 1 2",
		"NOOP",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	assert.Equal(2, len(prog.Opcodes))
	assert.Equal(1, prog.Opcodes[1].Arg)
	assert.Equal([]int{3, 5}, asm.Skipped)
}

func TestAssemblerStrict(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Strict: true}

	table := []struct {
		line string
		err  error
	}{
		{"jmp 4", ErrOpcodeInvalid},
		{"addx 1 2", ErrOpcodeExtraArgs},
		{"noop 1", ErrOpcodeExtraArgs},
	}

	for _, entry := range table {
		prog, err := asm.Parse(strings.NewReader("noop\n" + entry.line))
		assert.Nil(prog, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.line) {
			assert.Equal(2, syntax.LineNo)
			assert.Equal(entry.line, syntax.Line)
		}
	}

	// Blank lines are not instructions.
	prog, err := asm.Parse(strings.NewReader("noop\n\nnoop\n"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Opcodes))

	_, err = asm.Parse(strings.NewReader("noop\n; just a comment\n"))
	assert.ErrorIs(err, ErrOpcodeInvalid)

	asm.Lenient = true
	prog, err = asm.Parse(strings.NewReader("noop\n; just a comment\nnoop ; again\n"))
	assert.NoError(err)
	assert.Equal(2, len(prog.Opcodes))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader("noop\naddx"))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrOperandMissing)

	prog, err = asm.Parse(strings.NewReader("noop\nnoop\naddx 0x10"))
	assert.Nil(prog)
	var num ErrParseNumber
	assert.True(errors.As(err, &num))
	assert.Equal(ErrParseNumber("0x10"), num)
	assert.Equal("line 3 'addx 0x10' '0x10' is not a number", err.Error())

	_, err = asm.Parse(strings.NewReader("addx three"))
	assert.Error(err)
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	first, err := asm.Parse(strings.NewReader("addx 2\nbogus"))
	assert.NoError(err)
	skipped := asm.Skipped

	second, err := asm.Parse(strings.NewReader("bogus\naddx 2"))
	assert.NoError(err)

	assert.Equal(first.Cycles(), second.Cycles())
	assert.Equal([]int{1}, asm.Skipped)

	// Earlier results are not overwritten by a later Parse.
	assert.Equal([]int{2}, skipped)
}
