package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/surfgen/internal/engine/terrain"
	"github.com/Faultbox/surfgen/internal/engine/water"
)

var (
	exportOut  string
	exportTime float64
	exportI    int
	exportJ    int
)

var exportCmd = &cobra.Command{
	Use:       "export terrain|ocean",
	Short:     "Write a terrain chunk or the ocean as Wavefront OBJ",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"terrain", "ocean"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().Float64Var(&exportTime, "time", 0, "elapsed seconds for the ocean surface")
	exportCmd.Flags().IntVar(&exportI, "chunk-i", 0, "terrain chunk column (along X)")
	exportCmd.Flags().IntVar(&exportJ, "chunk-j", 0, "terrain chunk row (along Z)")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, ferr := os.Create(exportOut)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	switch args[0] {
	case "terrain":
		b, err := terrain.NewBuilder(cfg.Terrain.Settings)
		if err != nil {
			return err
		}
		c, err := b.Build(terrain.Coord{I: exportI, J: exportJ})
		if err != nil {
			return err
		}
		return c.Mesh.WriteOBJ(out, fmt.Sprintf("chunk_%d_%d", exportI, exportJ), c.Model)
	case "ocean":
		s, err := water.NewSurface(cfg.Ocean)
		if err != nil {
			return err
		}
		m, err := s.Build(cfg.Scene.OceanWidth, cfg.Scene.OceanHeight, exportTime)
		if err != nil {
			return err
		}
		return m.WriteOBJ(out, "ocean", s.Model())
	}
	return fmt.Errorf("unknown export target %q", args[0])
}
