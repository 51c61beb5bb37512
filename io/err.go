package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Handler errors
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrInputClosed    = errors.New(f("input closed"))
)

// ErrInputParse indicates console input that is not a decimal integer.
type ErrInputParse string

func (err ErrInputParse) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrInputParse) Is(other error) (ok bool) {
	_, ok = other.(ErrInputParse)
	return
}
