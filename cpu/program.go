package cpu

import (
	"iter"
)

// Line is one (label, instruction) pair of a program. The zero Label
// marks an unlabeled line.
type Line struct {
	Label  string
	Inst   Instruction
	LineNo int // 1-based source line number, for diagnostics
}

// Program is an ordered instruction sequence. The ordinal position of
// a line is the absolute memory address it assembles to. Built once by
// Assembler.Parse, consumed by Assembler.Assemble.
type Program struct {
	Lines []Line
}

// At returns the line assembled at the given address, or nil.
func (prog *Program) At(addr int16) (line *Line) {
	if addr < 0 || int(addr) >= len(prog.Lines) {
		return
	}

	line = &prog.Lines[addr]
	return
}

// Addressed iterates the lines paired with their memory addresses.
func (prog *Program) Addressed() iter.Seq2[int16, Line] {
	return func(yield func(addr int16, line Line) bool) {
		for n, line := range prog.Lines {
			if !yield(int16(n), line) {
				return
			}
		}
	}
}
