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

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "Assemble a program and run it against the console",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		in := os.Stdin
		if name, _ := cmd.Flags().GetString("input"); name != "" {
			file, err := os.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			defer file.Close()
			in = file
		}

		emu := emulator.NewEmulator(io.NewConsole(in, os.Stdout))
		emu.Verbose = verboseFlag(cmd)

		file, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()

		if err = emu.Load(file); err != nil {
			log.Fatal(err)
		}
		if err = emu.Run(); err != nil {
			log.Fatal(err)
		}

		if name, _ := cmd.Flags().GetString("snapshot"); name != "" {
			out, err := os.Create(name)
			if err != nil {
				log.Fatal(err)
			}
			defer out.Close()
			if err = emu.Save(out); err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("input", "", "read program input from a file instead of stdin")
	runCmd.Flags().String("snapshot", "", "write the final machine state as JSON to a file")
}
