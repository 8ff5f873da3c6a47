package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coreentropy/csprng"
)

var (
	readBytes   int
	readSources int
)

// readCmd seeds a fresh engine from crypto/rand via PutBytes (the engine
// has no persistence, so there is nothing else to seed it from between
// process runs) and prints n bytes of its output as hex.
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Seed a fresh engine and print pseudo-random output",
	RunE: func(cmd *cobra.Command, args []string) error {
		if readBytes <= 0 {
			return fmt.Errorf("--bytes must be a positive integer")
		}

		e, err := csprng.NewEngine(readSources)
		if err != nil {
			return err
		}

		seed := make([]byte, 64)
		if _, err := rand.Read(seed); err != nil {
			return fmt.Errorf("reading OS entropy for seed: %w", err)
		}
		e.PutBytes(seed)
		if !e.IsSeeded() {
			return fmt.Errorf("engine did not reach the reseed threshold from %s of seed material", humanize.Bytes(uint64(len(seed))))
		}

		out := make([]byte, readBytes)
		if err := e.GetBytes(out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
		return nil
	},
}

func init() {
	readCmd.Flags().IntVarP(&readBytes, "bytes", "n", 32, "number of pseudo-random bytes to print")
	readCmd.Flags().IntVarP(&readSources, "sources", "s", 1, "number of entropy sources to construct the engine with")
	RootCmd.AddCommand(readCmd)
}
