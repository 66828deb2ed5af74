package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/scaffold/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scaffold",
		Short:        "Convention-routed web scaffold",
		Long:         "Discovers controllers, binds their conventional routes, and serves them over HTTP.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config-dir", ".", "Directory holding config.toml and environment overlays")

	root.AddCommand(
		newServeCommand(),
		newRoutesCommand(),
		newMigrateCommand(),
	)
	return root
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	return config.LoadFrom(dir)
}
