// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/lmc/memory"
)

// Assembler translates Little Man Computer source text into a memory
// image. Parse builds the instruction sequence; Assemble resolves
// labels and encodes the words.
type Assembler struct {
	Verbose bool // If set, logs translation steps at debug level.
}

// Parse reads source lines into a Program. A line holds up to three
// whitespace-separated tokens; blank lines and // comments are
// dropped. One token is a bare no-operand instruction. Three tokens
// are label, mnemonic, operand. Two tokens are ambiguous: the first
// token is tried as a mnemonic taking the second as its operand, and
// only if no such instruction exists is it treated as a label ahead of
// an operand-less instruction.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		tokens := strings.Fields(line)
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "//") {
			continue
		}

		if asm.Verbose {
			log.Debugf("parse %v: %v", lineno, tokens)
		}

		var entry Line
		entry, err = parseTokens(tokens)
		if err != nil {
			return
		}

		entry.LineNo = lineno
		prog.Lines = append(prog.Lines, entry)
	}

	err = scanner.Err()

	return
}

// parseTokens interprets one tokenized line as a program entry.
func parseTokens(tokens []string) (entry Line, err error) {
	switch len(tokens) {
	case 1:
		entry.Inst, err = MakeInstruction(tokens[0], nil)
	case 2:
		od := ParseOperand(tokens[1])

		inst, ierr := MakeInstruction(tokens[0], &od)
		if ierr == nil {
			entry.Inst = inst
			return
		}
		if !errors.Is(ierr, ErrOpUnknown("")) {
			err = ierr
			return
		}

		entry.Label = tokens[0]
		entry.Inst, err = MakeInstruction(tokens[1], nil)
	case 3:
		od := ParseOperand(tokens[2])

		entry.Label = tokens[0]
		entry.Inst, err = MakeInstruction(tokens[1], &od)
	default:
		err = ErrLineMalformed
	}

	return
}

// Assemble encodes prog into a memory image, resolving every label
// reference to the ordinal position of the labeled line. The first
// failing resolution aborts; no partial image is returned.
func (asm *Assembler) Assemble(prog *Program) (image memory.Image, err error) {
	if len(prog.Lines) > memory.Size {
		err = ErrProgramTooLong(len(prog.Lines))
		return
	}

	for addr, line := range prog.Addressed() {
		var word int16
		word, err = line.Inst.Encode(prog)
		if err != nil {
			err = &ErrAssemble{LineNo: line.LineNo, Err: err}
			image = memory.Image{}
			return
		}

		image[addr] = word

		if asm.Verbose {
			log.Debugf("assemble %02d: % 4d  %v %v", addr, word, line.Inst.Op, line.Inst.Operand)
		}
	}

	return
}
