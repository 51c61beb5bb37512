// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator wires the execution engine to a program listing and
// an I/O handler, adding source-line attribution of runtime errors,
// per-step debug tracing, and snapshot persistence.
package emulator

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/lmc/cpu"
)

// Emulator state. Program + machine + I/O handler.
type Emulator struct {
	Verbose bool         // If set, enables per-step debug logging.
	Program *cpu.Program // The currently loaded program listing.
	Cpu     *cpu.Cpu     // The machine running it.
	Handler cpu.Handler  // I/O boundary used by INP/OUT/OTC.
}

// NewEmulator creates an emulator with an empty program and the given
// I/O handler.
func NewEmulator(handler cpu.Handler) (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		Cpu:     &cpu.Cpu{},
		Handler: handler,
	}

	return
}

// Load parses program source and resets the machine.
func (emu *Emulator) Load(input io.Reader) (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	err = emu.Reset()
	return
}

// Reset re-assembles the program into a fresh machine with all
// registers zeroed.
func (emu *Emulator) Reset() (err error) {
	asm := &cpu.Assembler{Verbose: emu.Verbose}

	image, err := asm.Assemble(emu.Program)
	if err != nil {
		return
	}

	emu.Cpu = cpu.NewCpu(image)
	return
}

// LineNo returns the source line of the instruction at addr, or 0 when
// the address holds no assembled line.
func (emu *Emulator) LineNo(addr int16) int {
	line := emu.Program.At(addr)
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Tick performs a single fetch-decode-execute cycle. done reports that
// the machine has halted normally; an error is wrapped with the source
// line of the faulting instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	at := emu.Cpu.Pc

	err = emu.Cpu.Step(emu.Handler)
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(at), Err: err}
		return
	}

	if emu.Verbose {
		log.Debugf("pc=%v cir=%v mar=%v mdr=%v acc=%v",
			emu.Cpu.Pc, emu.Cpu.Cir, emu.Cpu.Mar, emu.Cpu.Mdr, emu.Cpu.Acc)
	}

	done = emu.Cpu.Halted()
	return
}

// Run ticks the machine until it halts or a step fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
