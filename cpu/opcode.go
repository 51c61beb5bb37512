package cpu

import (
	"strings"

	"github.com/ezrec/lmc/memory"
)

// Op is one of the twelve instruction opcodes.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HLT = Op(0)  // HLT
	OP_ADD = Op(1)  // ADD
	OP_SUB = Op(2)  // SUB
	OP_STA = Op(3)  // STA
	OP_LDA = Op(4)  // LDA
	OP_BRA = Op(5)  // BRA
	OP_BRZ = Op(6)  // BRZ
	OP_BRP = Op(7)  // BRP
	OP_INP = Op(8)  // INP
	OP_OUT = Op(9)  // OUT
	OP_OTC = Op(10) // OTC
	OP_DAT = Op(11) // DAT
)

// mnemonicMap maps upper-cased mnemonics to opcodes.
var mnemonicMap = map[string]Op{
	"HLT": OP_HLT,
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"STA": OP_STA,
	"LDA": OP_LDA,
	"BRA": OP_BRA,
	"BRZ": OP_BRZ,
	"BRP": OP_BRP,
	"INP": OP_INP,
	"OUT": OP_OUT,
	"OTC": OP_OTC,
	"DAT": OP_DAT,
}

// Base returns the additive constant that, combined with a resolved
// address, forms the final machine word. HLT and DAT have base 0; a
// DAT word is its operand value verbatim, never base plus address.
func (op Op) Base() int16 {
	switch op {
	case OP_ADD:
		return 100
	case OP_SUB:
		return 200
	case OP_STA:
		return 300
	case OP_LDA:
		return 500
	case OP_BRA:
		return 600
	case OP_BRZ:
		return 700
	case OP_BRP:
		return 800
	case OP_INP:
		return 901
	case OP_OUT:
		return 902
	case OP_OTC:
		return 922
	}

	// HLT, DAT
	return 0
}

// NeedsOperand reports whether the opcode requires an operand.
func (op Op) NeedsOperand() bool {
	switch op {
	case OP_LDA, OP_STA, OP_ADD, OP_SUB, OP_BRA, OP_BRZ, OP_BRP:
		return true
	}

	return false
}

// TakesOperand reports whether the opcode carries an operand at all.
// DAT carries one but does not require it; it defaults to literal 0.
func (op Op) TakesOperand() bool {
	return op.NeedsOperand() || op == OP_DAT
}

// Instruction is a single opcode with its operand, if any. Immutable
// once constructed.
type Instruction struct {
	Op      Op
	Operand Operand
}

// MakeInstruction builds an instruction from a mnemonic and an
// optional operand. Mnemonic matching is case-insensitive. An
// unrecognized mnemonic yields ErrOpUnknown, distinguishable from a
// required operand being absent (ErrOperandMissing); the source-line
// parser relies on that distinction to disambiguate two-token lines.
// A superfluous operand on a no-operand instruction is ignored.
func MakeInstruction(mnemonic string, operand *Operand) (inst Instruction, err error) {
	op, ok := mnemonicMap[strings.ToUpper(mnemonic)]
	if !ok {
		err = ErrOpUnknown(mnemonic)
		return
	}

	inst.Op = op

	switch {
	case op.NeedsOperand():
		if operand == nil {
			err = ErrOperandMissing(op.String())
			return
		}
		inst.Operand = *operand
	case op == OP_DAT:
		if operand != nil {
			inst.Operand = *operand
		}
	}

	return
}

// String renders the instruction in source form.
func (inst Instruction) String() string {
	if !inst.Op.TakesOperand() {
		return inst.Op.String()
	}

	return inst.Op.String() + " " + inst.Operand.String()
}

// Encode produces the machine word for the instruction within prog.
// DAT encodes its resolved operand value verbatim (it reserves a data
// cell, not an instruction); every other operand-carrying opcode adds
// the resolved address, which must lie inside the memory, to its base
// encoding.
func (inst Instruction) Encode(prog *Program) (word int16, err error) {
	if !inst.Op.TakesOperand() {
		word = inst.Op.Base()
		return
	}

	value, err := inst.Operand.Resolve(prog)
	if err != nil {
		return
	}

	if inst.Op == OP_DAT {
		word = value
		return
	}

	if !memory.Valid(value) {
		err = memory.ErrAddressRange(value)
		return
	}

	word = inst.Op.Base() + value
	return
}
