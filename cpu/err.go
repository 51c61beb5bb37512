package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrLineMalformed = errors.New(f("malformed line"))
)

// ErrOpUnknown indicates a token that is not an instruction mnemonic.
type ErrOpUnknown string

func (err ErrOpUnknown) Error() string {
	return f("invalid opcode '%v'", string(err))
}

func (err ErrOpUnknown) Is(other error) (ok bool) {
	_, ok = other.(ErrOpUnknown)
	return
}

// ErrOperandMissing indicates an instruction that requires an operand
// but was given none.
type ErrOperandMissing string

func (err ErrOperandMissing) Error() string {
	return f("%v requires an operand", string(err))
}

func (err ErrOperandMissing) Is(other error) (ok bool) {
	_, ok = other.(ErrOperandMissing)
	return
}

// ErrLabelInvalid indicates a label reference that matched no line.
type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("invalid label '%v'", string(err))
}

func (err ErrLabelInvalid) Is(other error) (ok bool) {
	_, ok = other.(ErrLabelInvalid)
	return
}

// ErrProgramTooLong indicates a program that exceeds the memory size.
type ErrProgramTooLong int

func (err ErrProgramTooLong) Error() string {
	return f("program of %v instructions exceeds memory", int(err))
}

func (err ErrProgramTooLong) Is(other error) (ok bool) {
	_, ok = other.(ErrProgramTooLong)
	return
}

// ErrInputRange indicates an INP value outside [-999, 999].
type ErrInputRange int16

func (err ErrInputRange) Error() string {
	return f("number out of range: %v", int16(err))
}

func (err ErrInputRange) Is(other error) (ok bool) {
	_, ok = other.(ErrInputRange)
	return
}

// ErrInstructionInvalid indicates an undecodable instruction word.
type ErrInstructionInvalid int16

func (err ErrInstructionInvalid) Error() string {
	return f("invalid instruction: %v", int16(err))
}

func (err ErrInstructionInvalid) Is(other error) (ok bool) {
	_, ok = other.(ErrInstructionInvalid)
	return
}

// ErrSyntax locates a translation error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrAssemble locates an assembly error at its source line.
type ErrAssemble struct {
	LineNo int
	Err    error
}

func (err *ErrAssemble) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrAssemble) Unwrap() error {
	return err.Err
}
