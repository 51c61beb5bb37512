package script

import (
	"errors"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Fixture errors
	ErrFixtureNoInputs = errors.New(f("fixture defines no inputs"))
)

// ErrFixtureValue indicates a fixture element that is not a machine
// word or single character.
type ErrFixtureValue string

func (err ErrFixtureValue) Error() string {
	return f("%v is not a fixture value", string(err))
}

func (err ErrFixtureValue) Is(other error) (ok bool) {
	_, ok = other.(ErrFixtureValue)
	return
}

// ErrFixtureCount indicates a run that produced the wrong number of
// outputs.
type ErrFixtureCount struct {
	Want int
	Got  int
}

func (err *ErrFixtureCount) Error() string {
	return f("expected %v outputs, got %v", err.Want, err.Got)
}

// ErrFixtureMismatch indicates a single wrong output value.
type ErrFixtureMismatch struct {
	Index int
	Want  io.Value
	Got   io.Value
}

func (err *ErrFixtureMismatch) Error() string {
	return f("output %v: expected %v, got %v", err.Index, err.Want, err.Got)
}
