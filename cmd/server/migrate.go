package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/scaffold/internal/database"
	"github.com/JaimeStill/scaffold/pkg/logging"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	for _, dir := range []database.Direction{database.Up, database.Down} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   string(dir),
			Short: "Migrate the schema " + string(dir),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return database.Migrate(&cfg.Database, dir, logging.New(&cfg.Logging, cmd.ErrOrStderr()))
			},
		})
	}

	return migrateCmd
}
