package io

// Buffer is a Handler backed by in-memory queues. Inputs are consumed
// front to back; outputs are appended to Outputs. It is used by the
// test suites and by scripted fixture runs.
type Buffer struct {
	Inputs  []int16
	Outputs []Value
}

var _ Handler = (*Buffer)(nil)

// Input pops the next queued input value.
func (buf *Buffer) Input() (value int16, err error) {
	if len(buf.Inputs) == 0 {
		err = ErrInputExhausted
		return
	}

	value = buf.Inputs[0]
	buf.Inputs = buf.Inputs[1:]
	return
}

// Output appends the value to the capture queue.
func (buf *Buffer) Output(value Value) (err error) {
	buf.Outputs = append(buf.Outputs, value)
	return
}
