// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/io"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] program_file",
	Short: "Assemble a program and print its memory listing",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		emu := emulator.NewEmulator(&io.Buffer{})
		emu.Verbose = verboseFlag(cmd)

		file, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		if err = emu.Load(file); err != nil {
			log.Fatal(err)
		}

		if name, _ := cmd.Flags().GetString("output"); name != "" {
			out, err := os.Create(name)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
			if err = emu.Save(out); err != nil {
				log.Fatal(err)
			}
			return
		}

		for addr, line := range emu.Program.Addressed() {
			fmt.Printf("%02d  %4d  %-8s %v\n",
				addr, emu.Cpu.Ram[addr], line.Label, line.Inst)
		}
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)
	asmCmd.Flags().StringP("output", "o", "", "write the assembled machine state as JSON to a file")
}
