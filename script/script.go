// Package script loads Starlark-defined run fixtures. A fixture file
// declares the machine's input queue and, optionally, the exact output
// sequence a run must produce:
//
//	inputs = [3, 4]
//	expect = [7]
//
// Both globals may be computed programmatically; output expectations
// may mix integers with single-character strings for OTC output.
package script

import (
	"os"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lmc/io"
)

// Fixture is a scripted machine run: what to feed INP and what OUT and
// OTC are expected to emit.
type Fixture struct {
	Inputs []int16
	Expect []io.Value

	// HasExpect distinguishes "expect nothing" from "expect unchecked".
	HasExpect bool
}

// Load reads and executes a fixture file.
func Load(path string) (fix *Fixture, err error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return
	}

	fix, err = Exec(path, source)
	return
}

// Exec executes fixture source and extracts the inputs and expect
// globals.
func Exec(name string, source []byte) (fix *Fixture, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, source, nil)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			fix = nil
		}
	}()

	fix = &Fixture{}

	inputs, ok := globals["inputs"]
	if !ok {
		err = ErrFixtureNoInputs
		return
	}
	fix.Inputs, err = wordList(inputs)
	if err != nil {
		return
	}

	expect, ok := globals["expect"]
	if ok {
		fix.HasExpect = true
		fix.Expect, err = valueList(expect)
		if err != nil {
			return
		}
	}

	return
}

// Handler makes a fresh buffer handler preloaded with the fixture's
// inputs.
func (fix *Fixture) Handler() *io.Buffer {
	return &io.Buffer{Inputs: slices.Clone(fix.Inputs)}
}

// Check compares a run's outputs against the fixture's expectations.
// A fixture without an expect global accepts any output.
func (fix *Fixture) Check(outputs []io.Value) (err error) {
	if !fix.HasExpect {
		return
	}

	if len(outputs) != len(fix.Expect) {
		err = &ErrFixtureCount{Want: len(fix.Expect), Got: len(outputs)}
		return
	}

	for n := range fix.Expect {
		if outputs[n] != fix.Expect[n] {
			err = &ErrFixtureMismatch{Index: n, Want: fix.Expect[n], Got: outputs[n]}
			return
		}
	}

	return
}

// wordList converts a Starlark list of integers to machine words.
func wordList(value starlark.Value) (words []int16, err error) {
	list, ok := value.(*starlark.List)
	if !ok {
		err = ErrFixtureValue(value.String())
		return
	}

	for n := range list.Len() {
		var word int16
		word, err = word16(list.Index(n))
		if err != nil {
			return
		}
		words = append(words, word)
	}

	return
}

// valueList converts a Starlark list of integers and single-character
// strings to expected output values.
func valueList(value starlark.Value) (values []io.Value, err error) {
	list, ok := value.(*starlark.List)
	if !ok {
		err = ErrFixtureValue(value.String())
		return
	}

	for n := range list.Len() {
		elem := list.Index(n)

		switch elem := elem.(type) {
		case starlark.String:
			if len(string(elem)) != 1 {
				err = ErrFixtureValue(elem.String())
				return
			}
			values = append(values, io.CharValue(string(elem)[0]))
		default:
			var word int16
			word, err = word16(elem)
			if err != nil {
				return
			}
			values = append(values, io.IntValue(word))
		}
	}

	return
}

// word16 converts a Starlark integer to a machine word.
func word16(value starlark.Value) (word int16, err error) {
	st, ok := value.(starlark.Int)
	if !ok {
		err = ErrFixtureValue(value.String())
		return
	}

	v64, ok := st.Int64()
	if !ok || v64 > 32767 || v64 < -32768 {
		err = ErrFixtureValue(value.String())
		return
	}

	word = int16(v64)
	return
}
