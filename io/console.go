package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Console is the reference Handler implementation. Each input value is
// read as one line of text and parsed as a decimal integer; output
// integers are written newline-terminated and output characters are
// written bare. When the input stream is an interactive terminal, a
// "> " prompt is printed before each read.
type Console struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

var _ Handler = (*Console)(nil)

// NewConsole creates a console handler over the given streams.
func NewConsole(in io.Reader, out io.Writer) (con *Console) {
	con = &Console{
		In:  in,
		Out: out,
	}

	return
}

// interactive reports whether the input stream is a terminal.
func (con *Console) interactive() bool {
	file, ok := con.In.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

// Input reads a line from the input stream and parses it as a decimal
// integer.
func (con *Console) Input() (value int16, err error) {
	if con.scanner == nil {
		con.scanner = bufio.NewScanner(con.In)
	}

	if con.interactive() {
		fmt.Fprint(con.Out, "> ")
	}

	if !con.scanner.Scan() {
		err = con.scanner.Err()
		if err == nil {
			err = ErrInputClosed
		}
		return
	}

	text := strings.TrimSpace(con.scanner.Text())
	v64, err := strconv.ParseInt(text, 10, 16)
	if err != nil {
		err = ErrInputParse(text)
		return
	}

	value = int16(v64)
	return
}

// Output writes a value to the output stream.
func (con *Console) Output(value Value) (err error) {
	switch value.Kind {
	case VALUE_CHAR:
		_, err = con.Out.Write([]byte{value.Char})
	default:
		_, err = fmt.Fprintf(con.Out, "%d\n", value.Int)
	}

	return
}
