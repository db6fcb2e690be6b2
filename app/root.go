// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atik-assistant",
	Short: "Atik Assistant serves the Atik theme widgets",
	Long: `Atik Assistant serves a small site with theme sidebars and the
widgets placed in them, and an admin area to configure those widgets.`,
	Args: cobra.OnlyValidArgs,
}

// configPath is the path to the configuration file, shared by every command.
var configPath string //nolint:gochecknoglobals

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
