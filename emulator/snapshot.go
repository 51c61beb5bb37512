package emulator

import (
	"encoding/json"
	"io"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/memory"
)

// Snapshot is a serializable capture of the full machine state: the
// five registers and the 100-word memory image.
type Snapshot struct {
	Pc  int16        `json:"pc"`
	Cir int16        `json:"cir"`
	Mar int16        `json:"mar"`
	Mdr int16        `json:"mdr"`
	Acc int16        `json:"acc"`
	Ram memory.Image `json:"ram"`
}

// Snapshot captures the current machine state.
func (emu *Emulator) Snapshot() Snapshot {
	return Snapshot{
		Pc:  emu.Cpu.Pc,
		Cir: emu.Cpu.Cir,
		Mar: emu.Cpu.Mar,
		Mdr: emu.Cpu.Mdr,
		Acc: emu.Cpu.Acc,
		Ram: emu.Cpu.Ram,
	}
}

// Restore replaces the machine state with a snapshot.
func (emu *Emulator) Restore(snap Snapshot) {
	emu.Cpu = cpu.NewCpu(snap.Ram)
	emu.Cpu.Pc = snap.Pc
	emu.Cpu.Cir = snap.Cir
	emu.Cpu.Mar = snap.Mar
	emu.Cpu.Mdr = snap.Mdr
	emu.Cpu.Acc = snap.Acc
}

// Save writes the machine state as indented JSON.
func (emu *Emulator) Save(output io.Writer) (err error) {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")

	err = enc.Encode(emu.Snapshot())
	return
}

// LoadSnapshot restores machine state from JSON.
func (emu *Emulator) LoadSnapshot(input io.Reader) (err error) {
	var snap Snapshot

	err = json.NewDecoder(input).Decode(&snap)
	if err != nil {
		return
	}

	emu.Restore(snap)
	return
}
