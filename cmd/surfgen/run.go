package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/surfgen/internal/config"
	"github.com/Faultbox/surfgen/internal/engine/input"
	"github.com/Faultbox/surfgen/internal/game"
	"github.com/Faultbox/surfgen/internal/game/scene"
	"github.com/Faultbox/surfgen/internal/logger"
)

var (
	runTicks       int
	runDuration    time.Duration
	runRealtime    bool
	runHold        []string
	runTerrainSeed int64
	runOceanSeed   int64
	runChunks      []int
	runWorkers     int
	runScript      string
	runIDs         string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scene headless",
	Long: `Build the default scene and tick it at scene.tick_rate, reporting how many
meshes would be uploaded to a renderer each frame.`,
	RunE: runScene,
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "number of ticks (overrides --duration)")
	runCmd.Flags().DurationVar(&runDuration, "duration", 5*time.Second, "simulated time to run")
	runCmd.Flags().BoolVar(&runRealtime, "realtime", false, "pace ticks against the wall clock")
	runCmd.Flags().StringSliceVar(&runHold, "hold", nil, "keys held down for the whole run (j,l,m,n,u,i)")
	runCmd.Flags().Int64Var(&runTerrainSeed, "terrain-seed", 0, "terrain noise seed")
	runCmd.Flags().Int64Var(&runOceanSeed, "ocean-seed", 0, "wave generator seed")
	runCmd.Flags().IntSliceVar(&runChunks, "chunks", nil, "chunk block size as X,Z")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "parallel chunk builds")
	runCmd.Flags().StringVar(&runScript, "light-script", "", "Lua script driving the light")
	runCmd.Flags().StringVar(&runIDs, "ids", "", "entity id generator (uuid or sequential)")
}

// commandOverrides turns subcommand flags into config overrides.
func commandOverrides(cmd *cobra.Command) []config.Override {
	var o []config.Override
	flags := cmd.Flags()
	if flags.Changed("terrain-seed") {
		o = append(o, config.WithTerrainSeed(runTerrainSeed))
	}
	if flags.Changed("ocean-seed") {
		o = append(o, config.WithOceanSeed(runOceanSeed))
	}
	if flags.Changed("chunks") && len(runChunks) == 2 {
		o = append(o, config.WithChunks(runChunks[0], runChunks[1]))
	}
	if flags.Changed("workers") {
		o = append(o, config.WithWorkers(runWorkers))
	}
	if flags.Changed("light-script") {
		o = append(o, config.WithLightScript(runScript))
	}
	if flags.Changed("ids") {
		o = append(o, config.WithIDs(runIDs))
	}
	return o
}

func runScene(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("chunks") && len(runChunks) != 2 {
		return fmt.Errorf("--chunks wants two values, got %d", len(runChunks))
	}

	keys := input.NewState()
	for _, name := range runHold {
		k, err := input.ParseKey(name)
		if err != nil {
			return err
		}
		keys.Press(k)
	}

	s, cleanup, err := scene.Build(cfg, keys, logger.Log)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	defer cleanup()

	if err := s.Populate(); err != nil {
		return fmt.Errorf("populate scene: %w", err)
	}
	logger.Info("scene ready",
		zap.Int("entities", s.Registry.Len()),
		zap.Int("chunks_x", cfg.Scene.ChunksX),
		zap.Int("chunks_z", cfg.Scene.ChunksZ))

	g, err := game.New(s, game.Config{
		TickRate: cfg.Scene.TickRate,
		Ticks:    runTicks,
		Duration: runDuration,
		Realtime: runRealtime,
	}, logger.Named("game"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	stats, err := g.Run(ctx)
	if err != nil {
		return err
	}

	light := s.Frame().Light()
	fmt.Fprintf(cmd.OutOrStdout(), "ticks:     %d (%.3fs simulated, %s wall)\n", stats.Ticks, stats.Elapsed, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(cmd.OutOrStdout(), "drawables: %d (%d vertices)\n", stats.Drawables, stats.Vertices)
	fmt.Fprintf(cmd.OutOrStdout(), "uploads:   %d\n", stats.Uploads)
	fmt.Fprintf(cmd.OutOrStdout(), "chunks:    %d generated\n", s.Terrain.Generated())
	fmt.Fprintf(cmd.OutOrStdout(), "light:     (%.3f, %.3f, %.3f)\n", light[0], light[1], light[2])
	return nil
}
