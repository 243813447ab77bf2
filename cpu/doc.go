// Package cpu implements the clock circuit and assembler for the CRT device.
//
// The CPU has a single signed register (X), a cycle counter and an
// instruction pointer (IP) into a Program. Every opcode takes a fixed number
// of cycles; its effect on X only becomes visible once all of its cycles
// have been counted. Observers attached to Tick see each cycle along with the
// value of X during that cycle.
//
// The assembler reads the textual listing, one instruction per line.
package cpu
