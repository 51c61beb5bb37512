// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/script"
)

var testCmd = &cobra.Command{
	Use:   "test [flags] program_file fixture_file",
	Short: "Run a program under a Starlark fixture and check its output",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}

		fix, err := script.Load(args[1])
		if err != nil {
			log.Fatal(err)
		}

		handler := fix.Handler()
		emu := emulator.NewEmulator(handler)
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

		if err = fix.Check(handler.Outputs); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("ok\t%v outputs\n", len(handler.Outputs))
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
