package cpu

import (
	"strconv"
)

// Operand is either a literal signed value or a symbolic label
// reference, decided lexically: a token that parses as a decimal
// integer is a literal, anything else is a label. Immutable once
// constructed.
type Operand struct {
	Label string // symbolic reference when non-empty
	Value int16  // literal value when Label is empty
}

// ParseOperand interprets a single operand token.
func ParseOperand(token string) (od Operand) {
	v64, err := strconv.ParseInt(token, 10, 16)
	if err != nil {
		od.Label = token
		return
	}

	od.Value = int16(v64)
	return
}

// Resolve returns the operand's numeric value within prog. A literal
// resolves to itself; a label reference resolves to the ordinal
// position of the first line carrying that label. Duplicate labels are
// permitted, first match wins.
func (od Operand) Resolve(prog *Program) (value int16, err error) {
	if od.Label == "" {
		value = od.Value
		return
	}

	for n, line := range prog.Lines {
		if line.Label == od.Label {
			value = int16(n)
			return
		}
	}

	err = ErrLabelInvalid(od.Label)
	return
}

// String formats the operand as it appears in source.
func (od Operand) String() string {
	if od.Label != "" {
		return od.Label
	}

	return strconv.Itoa(int(od.Value))
}
