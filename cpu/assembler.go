// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// opMap is a map of mnemonics to opcodes.
var opMap = map[string]Op{
	OP_NOOP.String(): OP_NOOP,
	OP_ADDX.String(): OP_ADDX,
}

// Assembler converts a CRT instruction listing into a Program.
//
// Unknown mnemonics are skipped unless Strict is set.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
	Strict  bool // If set, unknown mnemonics and extra operands are errors.
	Lenient bool // If set, ';' starts a comment and any run of whitespace separates words.

	Skipped []int // Line numbers of skipped lines from the last Parse.
}

// valueOf returns the value of a decimal operand.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	v64, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// splitWords splits a line on single spaces. Only empty trailing words are
// dropped, so "addx  3" has an empty operand and "\tnoop" is not a noop.
func (asm *Assembler) splitWords(text string) (words []string) {
	if asm.Lenient {
		text_comment := strings.Split(text, ";")
		return strings.Fields(text_comment[0])
	}

	words = strings.Split(text, " ")
	for len(words) > 0 && len(words[len(words)-1]) == 0 {
		words = words[:len(words)-1]
	}

	return
}

// parseWords converts the words of a single line into an opcode.
// The opcode is not valid if ok is false.
func (asm *Assembler) parseWords(words []string, lineno int) (op Opcode, ok bool, err error) {
	if len(words) == 0 {
		return
	}

	code, known := opMap[words[0]]
	if !known {
		if asm.Strict {
			err = ErrOpcodeInvalid
		}
		return
	}

	op = Opcode{LineNo: lineno, Words: words, Op: code}

	args := 0
	switch code {
	case OP_ADDX:
		args = 1
		if len(words) < 2 {
			err = ErrOperandMissing
			return
		}
		op.Arg, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
	}

	if asm.Strict && len(words) > args+1 {
		err = ErrOpcodeExtraArgs
		return
	}

	ok = true
	return
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	asm.Skipped = nil
	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		words := asm.splitWords(text)
		line = text

		var op Opcode
		var ok bool
		op, ok, err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}

		if !ok {
			if len(words) > 0 {
				asm.Skipped = append(asm.Skipped, lineno)
				if asm.Verbose {
					log.Printf("%v: skipped '%v'", lineno, line)
				}
			}
			continue
		}

		prog.Opcodes = append(prog.Opcodes, op)
	}

	line = ""
	err = scanner.Err()

	return
}
