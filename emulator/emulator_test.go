package emulator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

func loadExample(t *testing.T, name string, inputs ...int16) (*Emulator, *io.Buffer) {
	t.Helper()

	handler := &io.Buffer{Inputs: inputs}
	emu := NewEmulator(handler)

	file, err := os.Open(filepath.Join("..", "examples", name))
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, emu.Load(file))

	return emu, handler
}

func intValues(values ...int16) (outputs []io.Value) {
	for _, value := range values {
		outputs = append(outputs, io.IntValue(value))
	}

	return
}

func TestExampleSum(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		inputs []int16
		sum    int16
	}){
		{"small", []int16{1, 2}, 3},
		{"larger", []int16{3, 4}, 7},
	}

	for _, entry := range table {
		emu, handler := loadExample(t, "sum.lmc", entry.inputs...)

		assert.NoError(emu.Run(), entry.name)
		assert.Equal(intValues(entry.sum), handler.Outputs, entry.name)
	}
}

func TestExampleFibonacci(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		limit    int16
		expected []int16
	}){
		{"ten", 10, []int16{0, 1, 1, 2, 3, 5, 8}},
		{"thirty", 30, []int16{0, 1, 1, 2, 3, 5, 8, 13, 21}},
	}

	for _, entry := range table {
		emu, handler := loadExample(t, "fibonacci.lmc", entry.limit)

		assert.NoError(emu.Run(), entry.name)
		assert.Equal(intValues(entry.expected...), handler.Outputs, entry.name)
	}
}

func TestExampleCountdown(t *testing.T) {
	assert := assert.New(t)

	for _, start := range []int16{10, 30} {
		emu, handler := loadExample(t, "countdown.lmc", start)

		assert.NoError(emu.Run())

		var expected []io.Value
		for n := start; n >= 0; n-- {
			expected = append(expected, io.IntValue(n))
		}
		assert.Equal(expected, handler.Outputs)
	}
}

func TestExampleMultiplication(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		inputs  []int16
		product int16
	}){
		{"two_three", []int16{2, 3}, 6},
		{"five_seven", []int16{5, 7}, 35},
	}

	for _, entry := range table {
		emu, handler := loadExample(t, "multiplication.lmc", entry.inputs...)

		assert.NoError(emu.Run(), entry.name)
		assert.Equal(intValues(entry.product), handler.Outputs, entry.name)
	}
}

func TestExampleHello(t *testing.T) {
	assert := assert.New(t)

	emu, handler := loadExample(t, "hello.lmc")

	assert.NoError(emu.Run())

	expected := []io.Value{
		io.CharValue('H'),
		io.CharValue('i'),
		io.CharValue('\n'),
	}
	assert.Equal(expected, handler.Outputs)
}

func TestLoadReportsAssemblyErrors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(&io.Buffer{})

	err := emu.Load(strings.NewReader("BRA nowhere"))
	assert.True(errors.Is(err, cpu.ErrLabelInvalid("")))
	assert.Contains(err.Error(), "nowhere")
}

func TestRuntimeErrorLineNumber(t *testing.T) {
	assert := assert.New(t)

	source := strings.Join([]string{
		"// data executed as an instruction",
		"LDA cell",
		"BRA cell",
		"cell DAT 450",
	}, "\n")

	emu := NewEmulator(&io.Buffer{})
	assert.NoError(emu.Load(strings.NewReader(source)))

	err := emu.Run()

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(4, runtime.LineNo)
	assert.True(errors.Is(err, cpu.ErrInstructionInvalid(0)))
}

func TestSnapshotRoundTrip(t *testing.T) {
	assert := assert.New(t)

	emu, _ := loadExample(t, "sum.lmc", 3, 4)

	// Step twice, capture, and resume in a second emulator.
	_, err := emu.Tick()
	assert.NoError(err)
	_, err = emu.Tick()
	assert.NoError(err)

	var buf strings.Builder
	assert.NoError(emu.Save(&buf))

	restored := NewEmulator(&io.Buffer{Inputs: []int16{4}})
	assert.NoError(restored.LoadSnapshot(strings.NewReader(buf.String())))

	assert.Equal(emu.Cpu.Pc, restored.Cpu.Pc)
	assert.Equal(emu.Cpu.Acc, restored.Cpu.Acc)
	assert.Equal(emu.Cpu.Ram, restored.Cpu.Ram)

	assert.NoError(restored.Run())

	handler := restored.Handler.(*io.Buffer)
	assert.Equal(intValues(7), handler.Outputs)
}

func TestTickDone(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(&io.Buffer{})
	assert.NoError(emu.Load(strings.NewReader("HLT")))

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(cpu.PC_HALT, emu.Cpu.Pc)
}
