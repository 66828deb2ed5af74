package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/scaffold/internal/bootstrap"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Bind discovered controllers and start the HTTP server",
		Aliases: []string{"start"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}

			if err := app.Boot(); err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			return app.Shutdown(cfg.ShutdownTimeoutDuration())
		},
	}
}
