package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Faultbox/surfgen/pkg/gerstner"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Print the generated ocean waves",
	RunE:  runWaves,
}

func runWaves(cmd *cobra.Command, args []string) error {
	waves, err := gerstner.Generate(gerstner.NewRand(cfg.Ocean.Seed), cfg.Ocean.Waves)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tamplitude\tfrequency\twavelength\tdirection\tQ\t")
	for i, wave := range waves {
		wavelength := gerstner.Gravity * 2 * math.Pi / (wave.Frequency * wave.Frequency)
		fmt.Fprintf(w, "%d\t%.5f\t%.4f\t%.3f\t(%.3f, %.3f)\t%.3f\t\n",
			i, wave.Amplitude, wave.Frequency, wavelength,
			wave.Direction[0], wave.Direction[1], wave.Q)
	}
	return w.Flush()
}
