package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/surfgen/pkg/heightfield"
)

var (
	hfLevels    int
	hfCorners   []float64
	hfRoughness float64
	hfDecay     float64
	hfSeed      uint64
)

var heightfieldCmd = &cobra.Command{
	Use:   "heightfield",
	Short: "Print a subdivided height grid",
	Long: `Fill a (2^levels+1)^2 grid from four corner heights by midpoint
subdivision and print it row by row.`,
	RunE: runHeightfield,
}

func init() {
	heightfieldCmd.Flags().IntVar(&hfLevels, "levels", 2, "subdivision passes")
	heightfieldCmd.Flags().Float64SliceVar(&hfCorners, "corners", []float64{0, 0, 0, 0}, "corner heights: top-left,top-right,bottom-right,bottom-left")
	heightfieldCmd.Flags().Float64Var(&hfRoughness, "roughness", 0, "random offset amplitude on the first pass")
	heightfieldCmd.Flags().Float64Var(&hfDecay, "decay", 0.5, "roughness multiplier per pass")
	heightfieldCmd.Flags().Uint64Var(&hfSeed, "seed", 1, "perturbation seed")
}

func runHeightfield(cmd *cobra.Command, args []string) error {
	if len(hfCorners) != 4 {
		return fmt.Errorf("--corners wants four values, got %d", len(hfCorners))
	}
	var corners [4]float64
	copy(corners[:], hfCorners)

	var opts []heightfield.Option
	if hfRoughness > 0 {
		opts = append(opts, heightfield.WithPerturber(
			heightfield.NewSeededPerturber(hfSeed, hfRoughness, hfDecay, hfLevels)))
	}

	g, err := heightfield.Subdivide(corners, hfLevels, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for row := 0; row < g.Side(); row++ {
		for col := 0; col < g.Side(); col++ {
			fmt.Fprintf(out, "%9.4f", g.At(row, col))
		}
		fmt.Fprintln(out)
	}
	return nil
}
