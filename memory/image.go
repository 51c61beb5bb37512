// Package memory implements the 100-word store of the Little Man Computer.
//
// Each word is a signed decimal value. Data cells hold values in
// [-999, 999]; assembled instruction words range up into the low
// thousands (e.g. 501 for "LDA 1"). Every address-register-derived
// access is bounds checked.
package memory

import (
	"fmt"
	"strings"
)

// Size is the number of addressable words.
const Size = 100

// Image is the fixed memory of the machine. Index is the absolute
// address.
type Image [Size]int16

// Valid reports whether addr is within the addressable range.
func Valid(addr int16) bool {
	return addr >= 0 && addr < Size
}

// Load reads the word at addr.
func (im *Image) Load(addr int16) (value int16, err error) {
	if !Valid(addr) {
		err = ErrAddressRange(addr)
		return
	}

	value = im[addr]
	return
}

// Store writes the word at addr.
func (im *Image) Store(addr int16, value int16) (err error) {
	if !Valid(addr) {
		err = ErrAddressRange(addr)
		return
	}

	im[addr] = value
	return
}

// String formats the image as ten rows of ten words.
func (im *Image) String() (text string) {
	var sb strings.Builder

	for row := 0; row < Size; row += 10 {
		fmt.Fprintf(&sb, "%02d:", row)
		for col := range 10 {
			fmt.Fprintf(&sb, " % 4d", im[row+col])
		}
		sb.WriteByte('\n')
	}

	text = sb.String()
	return
}
