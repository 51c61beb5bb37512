// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
	"github.com/ezrec/lmc/memory"
)

var debugCmd = &cobra.Command{
	Use:   "debug [flags] program_file",
	Short: "Step through a program in a terminal UI",
	Long: `debug assembles a program and opens an interactive view of the
machine. 's' executes one instruction, 'r' runs to halt, 'x' resets
the machine, and 'q' quits. Input is supplied up front with --inputs,
since the stepper cannot block on the console.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		handler := &io.Buffer{}
		if inputs, _ := cmd.Flags().GetString("inputs"); inputs != "" {
			for _, field := range strings.Split(inputs, ",") {
				value, err := strconv.ParseInt(strings.TrimSpace(field), 10, 16)
				if err != nil {
					log.Fatalf("bad input %q: %v", field, err)
				}
				handler.Inputs = append(handler.Inputs, int16(value))
			}
		}

		emu := emulator.NewEmulator(handler)

		file, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		if err = emu.Load(file); err != nil {
			log.Fatal(err)
		}

		if err = debugLoop(emu, handler); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().String("inputs", "", "comma separated input values for INP")
}

// debugLoop drives the tview application until the user quits.
func debugLoop(emu *emulator.Emulator, handler *io.Buffer) error {
	app := tview.NewApplication()

	registers := tview.NewTextView().SetDynamicColors(true)
	registers.SetBorder(true).SetTitle("Registers")

	ram := tview.NewTextView().SetDynamicColors(true)
	ram.SetBorder(true).SetTitle("Memory")

	output := tview.NewTextView()
	output.SetBorder(true).SetTitle("Output")

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetText("[s] step  [r] run  [x] reset  [q] quit")

	inputs := slices.Clone(handler.Inputs)

	var lastErr error

	refresh := func() {
		registers.SetText(registerText(emu))
		ram.SetText(memoryText(emu))
		output.SetText(outputText(handler.Outputs))
		switch {
		case lastErr != nil:
			status.SetText(fmt.Sprintf("[red]%v[-]", lastErr))
		case emu.Cpu.Halted():
			status.SetText("[green]halted[-]  [x] reset  [q] quit")
		default:
			status.SetText("[s] step  [r] run  [x] reset  [q] quit")
		}
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			app.Stop()
			return nil
		}

		switch event.Rune() {
		case 'q':
			app.Stop()
			return nil
		case 's':
			if lastErr == nil && !emu.Cpu.Halted() {
				_, lastErr = emu.Tick()
			}
		case 'r':
			for lastErr == nil && !emu.Cpu.Halted() {
				_, lastErr = emu.Tick()
			}
		case 'x':
			lastErr = emu.Reset()
			handler.Inputs = slices.Clone(inputs)
			handler.Outputs = nil
		}

		refresh()
		return event
	})

	refresh()

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(registers, 9, 0, false).
		AddItem(output, 0, 1, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(ram, 0, 2, true).
			AddItem(side, 0, 1, false), 0, 1, true).
		AddItem(status, 1, 0, false)

	return app.SetRoot(layout, true).Run()
}

func registerText(emu *emulator.Emulator) string {
	cpu := emu.Cpu
	line := emu.LineNo(cpu.Pc)

	return fmt.Sprintf(" pc:  %4d   (line %d)\n cir: %4d\n mar: %4d\n mdr: %4d\n acc: %4d\n",
		cpu.Pc, line, cpu.Cir, cpu.Mar, cpu.Mdr, cpu.Acc)
}

// memoryText renders the memory image ten words per row, with the
// cell at the program counter highlighted.
func memoryText(emu *emulator.Emulator) string {
	var sb strings.Builder

	for addr := int16(0); addr < memory.Size; addr++ {
		if addr%10 == 0 {
			fmt.Fprintf(&sb, " %02d:", addr)
		}
		if addr == emu.Cpu.Pc {
			fmt.Fprintf(&sb, " [yellow]%4d[-]", emu.Cpu.Ram[addr])
		} else {
			fmt.Fprintf(&sb, " %4d", emu.Cpu.Ram[addr])
		}
		if addr%10 == 9 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// outputText mirrors the console rendering: characters are emitted
// raw, integers one per line.
func outputText(values []io.Value) string {
	var sb strings.Builder

	for _, value := range values {
		if value.Kind == io.VALUE_CHAR {
			sb.WriteByte(value.Char)
		} else {
			fmt.Fprintf(&sb, "%d\n", value.Int)
		}
	}

	return sb.String()
}
