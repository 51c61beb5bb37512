package cpu

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

// Handler is the I/O boundary used by INP, OUT and OTC.
type Handler io.Handler

// Accumulator limits. Arithmetic wraps on a ring of 1999 values.
const (
	ACC_MAX = int16(999)
	ACC_MIN = int16(-999)
)

// PC_HALT is the terminal program counter sentinel set by HLT.
const PC_HALT = int16(-1)

// Machine word values of the no-operand instructions.
const (
	WORD_HLT = int16(0)
	WORD_INP = int16(901)
	WORD_OUT = int16(902)
	WORD_OTC = int16(922)
)

// Cpu is the execution engine: the five registers plus the memory
// image, advanced one fetch-decode-execute cycle per Step. Registers
// are exported so callers may trace or checkpoint state between steps.
type Cpu struct {
	Verbose bool // If set, logs machine state after every step.

	Pc  int16 // program counter
	Cir int16 // current instruction register
	Mar int16 // memory address register
	Mdr int16 // memory data register
	Acc int16 // accumulator

	Ram memory.Image
}

// NewCpu creates a machine with the image loaded and all registers
// zeroed, ready to fetch from address 0.
func NewCpu(image memory.Image) (cpu *Cpu) {
	cpu = &Cpu{
		Ram: image,
	}

	return
}

// Halted reports whether the machine has terminated: either HLT set
// the terminal sentinel, or the program counter left the addressable
// range by falling off the end of memory.
func (cpu *Cpu) Halted() bool {
	return !memory.Valid(cpu.Pc)
}

// Step executes a single fetch-decode-execute cycle. The program
// counter is advanced before decode, so it points at the next
// instruction while the current one executes.
func (cpu *Cpu) Step(handler Handler) (err error) {
	cpu.Mar = cpu.Pc
	cpu.Pc += 1
	cpu.Mdr, err = cpu.Ram.Load(cpu.Mar)
	if err != nil {
		return
	}
	cpu.Cir = cpu.Mdr

	switch cir := cpu.Cir; {
	case cir == WORD_HLT:
		cpu.Pc = PC_HALT
	case cir == WORD_INP:
		var value int16
		value, err = handler.Input()
		if err != nil {
			return
		}
		if value > ACC_MAX || value < ACC_MIN {
			err = ErrInputRange(value)
			return
		}
		cpu.Acc = value
	case cir == WORD_OUT:
		err = handler.Output(io.IntValue(cpu.Acc))
	case cir == WORD_OTC:
		err = handler.Output(io.CharValue(byte(uint16(cpu.Acc))))
	case cir >= 100 && cir <= 199:
		cpu.Mar = cir - 100
		var value int16
		value, err = cpu.Ram.Load(cpu.Mar)
		if err != nil {
			return
		}
		cpu.Acc = wrap(int(cpu.Acc) + int(value))
	case cir >= 200 && cir <= 299:
		cpu.Mar = cir - 200
		var value int16
		value, err = cpu.Ram.Load(cpu.Mar)
		if err != nil {
			return
		}
		cpu.Acc = wrap(int(cpu.Acc) - int(value))
	case cir >= 300 && cir <= 399:
		cpu.Mar = cir - 300
		err = cpu.Ram.Store(cpu.Mar, cpu.Acc)
	case cir >= 500 && cir <= 599:
		cpu.Mar = cir - 500
		cpu.Acc, err = cpu.Ram.Load(cpu.Mar)
	case cir >= 600 && cir <= 699:
		cpu.Mar = cir - 600
		cpu.Pc = cpu.Mar
	case cir >= 700 && cir <= 799:
		cpu.Mar = cir - 700
		if cpu.Acc == 0 {
			cpu.Pc = cpu.Mar
		}
	case cir >= 800 && cir <= 899:
		cpu.Mar = cir - 800
		if cpu.Acc > 0 {
			cpu.Pc = cpu.Mar
		}
	default:
		err = ErrInstructionInvalid(cir)
	}

	return
}

// wrap applies the accumulator overflow rule. The value space is a
// ring of 1999 values: overflowing past 999 by diff lands at
// -1000+diff, underflowing past -999 by diff lands at 1000-diff. This
// is not twos-complement truncation and not plain modular arithmetic.
func wrap(acc int) int16 {
	if acc > int(ACC_MAX) {
		diff := acc - int(ACC_MAX)
		acc = int(ACC_MIN) + diff - 1
	} else if acc < int(ACC_MIN) {
		diff := int(ACC_MIN) - acc
		acc = int(ACC_MAX) - diff + 1
	}

	return int16(acc)
}

// Run steps the machine until it halts. Executing HLT and falling off
// the end of memory are both normal termination; any step error aborts
// the run immediately.
func (cpu *Cpu) Run(handler Handler) (err error) {
	for {
		err = cpu.Step(handler)
		if err != nil {
			return
		}

		if cpu.Verbose {
			log.Debugf("pc=%v cir=%v mar=%v mdr=%v acc=%v",
				cpu.Pc, cpu.Cir, cpu.Mar, cpu.Mdr, cpu.Acc)
		}

		if cpu.Halted() {
			return
		}
	}
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	regs := [](struct {
		name  string
		value int16
	}){
		{"pc", cpu.Pc},
		{"cir", cpu.Cir},
		{"mar", cpu.Mar},
		{"mdr", cpu.Mdr},
		{"acc", cpu.Acc},
	}

	for _, reg := range regs {
		text += fmt.Sprintf("% 4s: % 4d\n", reg.name, reg.value)
	}

	return
}
