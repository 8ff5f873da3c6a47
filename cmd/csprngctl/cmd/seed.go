package cmd

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/coreentropy/csprng"
)

var seedSamples int

// seedCmd demonstrates the per-source novelty filter by feeding an engine
// a batch of jittered timer-like samples (crypto/rand-derived, not an
// actual arithmetic progression) through Update, reporting how many
// samples were fed and whether the engine ended up seeded. This is the
// Update path a kernel driver
// would exercise on every interrupt; PutBytes (see readCmd) is the
// trusted-entropy shortcut.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Feed a batch of sample entropy through the novelty filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedSamples <= 0 {
			return fmt.Errorf("--samples must be a positive integer")
		}

		e, err := csprng.NewEngine(1)
		if err != nil {
			return err
		}

		samples := make([]uint64, seedSamples)
		raw := make([]byte, 8*seedSamples)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("reading OS entropy for samples: %w", err)
		}
		for i := range samples {
			samples[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
		}

		e.Update(0, samples)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fed %s samples to source 0\n", humanize.Comma(int64(seedSamples)))
		fmt.Fprintf(out, "seeded: %v\n", e.IsSeeded())
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedSamples, "samples", "n", 256, "number of synthetic samples to feed through Update")
	RootCmd.AddCommand(seedCmd)
}
