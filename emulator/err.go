package emulator

import (
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// ErrRuntime locates a runtime error at its source line.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
