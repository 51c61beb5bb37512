// Package cpu implements the assembler and execution engine of the
// Little Man Computer: a decimal machine with a single accumulator, a
// 100-word memory, and a twelve-instruction opcode set.
//
// Translation happens in two stages. Assembler.Parse turns source text
// into an ordered Program of optionally labeled instructions, where
// the ordinal position of a line is its future memory address.
// Assembler.Assemble resolves symbolic labels to absolute addresses
// and encodes every instruction into a single signed decimal word. The
// Cpu then runs the fetch-decode-execute cycle over the resulting
// memory image, dispatching input and output through the io.Handler
// boundary.
package cpu
