package memory

import (
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// ErrAddressRange indicates an access outside the addressable range.
type ErrAddressRange int16

func (err ErrAddressRange) Error() string {
	return f("address %v out of range", int16(err))
}

func (err ErrAddressRange) Is(other error) (ok bool) {
	_, ok = other.(ErrAddressRange)
	return
}
