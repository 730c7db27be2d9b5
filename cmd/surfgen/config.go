package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/surfgen/internal/config"
)

var configTOML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal(configTOML)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save [path]",
	Short: "Write the effective configuration to a file",
	Long: `Write the effective configuration. Without a path it goes to the user
config directory. A .toml extension selects TOML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s/config.yaml\n", config.ConfigDir())
			return nil
		}
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configTOML, "toml", false, "print TOML instead of YAML")
	configCmd.AddCommand(configSaveCmd)
}
