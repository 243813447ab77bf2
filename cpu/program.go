package cpu

// Program is an assembled instruction listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the opcode in flight during a given 1-based cycle.
type Debug struct {
	*Opcode
	Index int // Cycle of the opcode, starting at 0.
}

// Debug returns the opcode executing during the cycle. Opcode is nil if the
// cycle is outside of the program.
func (prog *Program) Debug(cycle int) (dbg Debug) {
	if cycle < 1 {
		return
	}

	start := 1
	for n, op := range prog.Opcodes {
		count := op.Cycles()
		if cycle < start+count {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  cycle - start,
			}
			break
		}
		start += count
	}

	return
}

// Cycles returns the total number of cycles the program takes to run.
func (prog *Program) Cycles() (cycles int) {
	for _, op := range prog.Opcodes {
		cycles += op.Cycles()
	}

	return
}
