// Package cmd implements the csprngctl command-line harness used to
// exercise the csprng engine outside of the kernel context it is designed
// for — manual entropy injection during development and smoke-testing a
// build. The engine package itself has no CLI, network, or storage surface;
// this binary is the one place in the module that does.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when csprngctl is invoked with no subcommand.
var RootCmd = &cobra.Command{
	Use:   "csprngctl",
	Short: "Exercise the csprng Fortuna-style engine from the command line",
	Long: `csprngctl is a development harness for the csprng engine.

It is not a substitute for a real kernel-resident entropy source: every
invocation builds a fresh, in-process Engine (read seeds it from crypto/rand
before reading from it), since the engine itself keeps no persisted state
between runs.`,
}

// Execute runs the root command, adding all subcommands registered via
// their own init() functions.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "csprngctl: %v\n", err)
		os.Exit(1)
	}
}
