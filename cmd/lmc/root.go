// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lmc",
	Short: "Assembler and simulator for the Little Man Computer",
	Long: `lmc assembles Little Man Computer programs into 100-word decimal
memory images and executes them, with an interactive debugger and a
Starlark fixture runner for checking program output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag(cmd) {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command, exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug tracing")
}

func verboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		log.Fatal(err)
	}
	return verbose
}
