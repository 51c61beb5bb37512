// Package io provides the input/output boundary of the Little Man
// Computer. The execution engine depends only on the Handler contract;
// implementations include the interactive Console and the queue-backed
// Buffer used by tests and scripted runs.
package io

import (
	"fmt"
)

// ValueKind tags an output value.
type ValueKind int

//go:generate go tool stringer -linecomment -type=ValueKind
const (
	VALUE_INT  = ValueKind(0) // int
	VALUE_CHAR = ValueKind(1) // char
)

// Value is a single output emitted by the machine: either a decimal
// integer (OUT) or an 8-bit character code (OTC).
type Value struct {
	Kind ValueKind
	Int  int16
	Char byte
}

// IntValue makes a decimal integer output value.
func IntValue(value int16) Value {
	return Value{Kind: VALUE_INT, Int: value}
}

// CharValue makes a character output value.
func CharValue(char byte) Value {
	return Value{Kind: VALUE_CHAR, Char: char}
}

// String formats the value the way the console renders it.
func (val Value) String() string {
	if val.Kind == VALUE_CHAR {
		return string(rune(val.Char))
	}

	return fmt.Sprintf("%d", val.Int)
}

// Handler supplies input values to and receives output values from the
// execution engine. Input blocks until a value is available. Range
// validation of inputs is the engine's responsibility, not the
// handler's.
type Handler interface {
	// Input obtains the next input value.
	Input() (value int16, err error)
	// Output emits an output value.
	Output(value Value) error
}
