package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/scaffold/internal/bootstrap"
	"github.com/JaimeStill/scaffold/internal/routes"
	"github.com/JaimeStill/scaffold/pkg/logging"
)

func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the live route table without listening",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg, bootstrap.WithLogger(logging.Discard()))
			if err != nil {
				return err
			}

			if err := app.Prepare(); err != nil {
				return err
			}
			return printBindings(cmd, app.Routes())
		},
	}
}

func printBindings(cmd *cobra.Command, bindings []routes.Binding) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tCONTROLLER\tACTION")
	for _, b := range bindings {
		action := string(b.Action)
		if action == "" {
			action = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Method, b.Path, b.Controller, action)
	}
	return w.Flush()
}
