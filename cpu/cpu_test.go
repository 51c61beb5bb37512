package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

func TestStepRegisters(t *testing.T) {
	assert := assert.New(t)

	var image memory.Image
	image[0] = 501 // LDA 1
	image[1] = 42

	cpu := NewCpu(image)
	handler := &io.Buffer{}

	err := cpu.Step(handler)
	assert.NoError(err)

	assert.Equal(int16(1), cpu.Pc)
	assert.Equal(int16(501), cpu.Cir)
	assert.Equal(int16(501), cpu.Mdr)
	assert.Equal(int16(1), cpu.Mar) // decode rewrites mar with the operand address
	assert.Equal(int16(42), cpu.Acc)
	assert.False(cpu.Halted())
}

func TestHaltAfterOneStep(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(memory.Image{})
	handler := &io.Buffer{}

	err := cpu.Run(handler)
	assert.NoError(err)

	assert.Equal(PC_HALT, cpu.Pc)
	assert.True(cpu.Halted())
	assert.Empty(handler.Outputs)
}

func TestFallOffMemory(t *testing.T) {
	assert := assert.New(t)

	// 100 OUT instructions, no HLT, no backward branch: the machine
	// must fall off the end after exactly 100 steps.
	var image memory.Image
	for n := range image {
		image[n] = 902
	}

	cpu := NewCpu(image)
	handler := &io.Buffer{}

	err := cpu.Run(handler)
	assert.NoError(err)

	assert.Equal(int16(100), cpu.Pc)
	assert.True(cpu.Halted())
	assert.Equal(100, len(handler.Outputs))
}

func TestWraparound(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		start int16
		delta int16
		sub   bool
		acc   int16
	}){
		{"add_plain", 10, 20, false, 30},
		{"add_limit", 997, 2, false, 999},
		{"add_over", 999, 2, false, -998},
		{"add_over_one", 999, 1, false, -999},
		{"add_full", 999, 999, false, -1},
		{"sub_plain", 10, 20, true, -10},
		{"sub_limit", -997, 2, true, -999},
		{"sub_under", -999, 2, true, 998},
		{"sub_under_one", -999, 1, true, 999},
		{"sub_negative_over", 999, -2, true, -998},
		{"add_negative_under", -999, -2, false, 998},
	}

	for _, entry := range table {
		var image memory.Image
		image[0] = 503 // LDA 3
		if entry.sub {
			image[1] = 204 // SUB 4
		} else {
			image[1] = 104 // ADD 4
		}
		image[2] = 0 // HLT
		image[3] = entry.start
		image[4] = entry.delta

		cpu := NewCpu(image)
		err := cpu.Run(&io.Buffer{})
		assert.NoError(err, entry.name)
		assert.Equal(entry.acc, cpu.Acc, entry.name)
	}
}

func TestBranchConditions(t *testing.T) {
	assert := assert.New(t)

	// LDA 5; BR? 4; OUT; HLT; HLT; data
	table := [](struct {
		name    string
		branch  int16 // encoded branch word at address 1
		data    int16
		outputs []io.Value
	}){
		{"brp_taken_positive", 804, 1, nil},
		{"brp_skipped_zero", 804, 0, []io.Value{io.IntValue(0)}},
		{"brp_skipped_negative", 804, -5, []io.Value{io.IntValue(-5)}},
		{"brz_taken_zero", 704, 0, nil},
		{"brz_skipped_positive", 704, 2, []io.Value{io.IntValue(2)}},
		{"brz_skipped_negative", 704, -2, []io.Value{io.IntValue(-2)}},
		{"bra_taken_any", 604, -7, nil},
	}

	for _, entry := range table {
		var image memory.Image
		image[0] = 505 // LDA 5
		image[1] = entry.branch
		image[2] = 902 // OUT
		image[3] = 0   // HLT
		image[4] = 0   // HLT (branch target)
		image[5] = entry.data

		cpu := NewCpu(image)
		handler := &io.Buffer{}

		err := cpu.Run(handler)
		assert.NoError(err, entry.name)
		assert.Equal(entry.outputs, handler.Outputs, entry.name)
	}
}

func TestStoreMutatesMemory(t *testing.T) {
	assert := assert.New(t)

	var image memory.Image
	image[0] = 503 // LDA 3
	image[1] = 304 // STA 4
	image[2] = 0   // HLT
	image[3] = 77

	cpu := NewCpu(image)
	err := cpu.Run(&io.Buffer{})
	assert.NoError(err)
	assert.Equal(int16(77), cpu.Ram[4])
}

func TestInputRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		input int16
		err   bool
	}){
		{"in_range", 999, false},
		{"in_range_negative", -999, false},
		{"over", 1000, true},
		{"under", -1000, true},
	}

	for _, entry := range table {
		var image memory.Image
		image[0] = 901 // INP
		image[1] = 902 // OUT
		image[2] = 0   // HLT

		cpu := NewCpu(image)
		handler := &io.Buffer{Inputs: []int16{entry.input}}

		err := cpu.Run(handler)
		if entry.err {
			assert.True(errors.Is(err, ErrInputRange(0)), entry.name)
			assert.Empty(handler.Outputs, entry.name)
		} else {
			assert.NoError(err, entry.name)
			assert.Equal([]io.Value{io.IntValue(entry.input)}, handler.Outputs, entry.name)
		}
	}
}

func TestCharacterOutput(t *testing.T) {
	assert := assert.New(t)

	var image memory.Image
	image[0] = 503 // LDA 3
	image[1] = 922 // OTC
	image[2] = 0   // HLT
	image[3] = 72  // 'H'

	cpu := NewCpu(image)
	handler := &io.Buffer{}

	err := cpu.Run(handler)
	assert.NoError(err)
	assert.Equal([]io.Value{io.CharValue('H')}, handler.Outputs)
}

func TestCharacterOutputTruncates(t *testing.T) {
	assert := assert.New(t)

	// OTC emits the low 8 bits of the accumulator.
	var image memory.Image
	image[0] = 503 // LDA 3
	image[1] = 922 // OTC
	image[2] = 0   // HLT
	image[3] = -1

	cpu := NewCpu(image)
	handler := &io.Buffer{}

	err := cpu.Run(handler)
	assert.NoError(err)
	assert.Equal([]io.Value{io.CharValue(0xff)}, handler.Outputs)
}

func TestInvalidInstruction(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		word int16
	}){
		{"low_gap", 42},
		{"gap_400", 450},
		{"gap_900", 900},
		{"gap_903", 903},
		{"gap_923", 923},
		{"negative", -5},
	}

	for _, entry := range table {
		var image memory.Image
		image[0] = entry.word

		cpu := NewCpu(image)
		err := cpu.Run(&io.Buffer{})
		assert.True(errors.Is(err, ErrInstructionInvalid(0)), entry.name)
		assert.Contains(err.Error(), "invalid instruction", entry.name)
	}
}

func TestRoundTripSum(t *testing.T) {
	assert := assert.New(t)

	image := assembleSource(t, sumSource)

	cpu := NewCpu(image)
	handler := &io.Buffer{Inputs: []int16{3, 4}}

	err := cpu.Run(handler)
	assert.NoError(err)
	assert.Equal([]io.Value{io.IntValue(7)}, handler.Outputs)
}

func TestInputExhausted(t *testing.T) {
	assert := assert.New(t)

	var image memory.Image
	image[0] = 901 // INP

	cpu := NewCpu(image)
	err := cpu.Run(&io.Buffer{})
	assert.ErrorIs(err, io.ErrInputExhausted)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(memory.Image{})
	cpu.Acc = -12

	text := cpu.String()
	assert.True(strings.Contains(text, "acc"))
	assert.True(strings.Contains(text, "-12"))
}
