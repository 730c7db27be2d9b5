// surfgen generates procedural terrain chunks and a Gerstner-wave ocean.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/surfgen/internal/config"
	"github.com/Faultbox/surfgen/internal/logger"
)

var (
	cfgFile  string
	logLevel string
	logFile  string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "surfgen",
	Short: "Procedural terrain and ocean generator",
	Long: `surfgen builds seamless noise-driven terrain chunks and an animated
Gerstner-wave ocean, driven by an entity registry and a fixed-order system runner.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (enables rotation)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(heightfieldCmd)
	rootCmd.AddCommand(wavesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config and starts logging before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	var overrides []config.Override
	if cmd.Flags().Changed("log-level") {
		overrides = append(overrides, config.WithLogLevel(logLevel))
	}
	if cmd.Flags().Changed("log-file") {
		overrides = append(overrides, config.WithLogFile(logFile))
	}
	overrides = append(overrides, commandOverrides(cmd)...)

	loaded, err := config.Load(cfgFile, overrides...)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}
