package main

import (
	"themepark/internal/config"
	"themepark/internal/scenario"

	"github.com/spf13/cobra"
)

// describeCommand prints the demo rides' details and has the manager and
// the staff member report for work.
func describeCommand(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Describes the demo rides and the staff on duty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, cleanup, err := newApp(ctx, getConfig(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			scenario.Roster(ctx, a.op, scenario.NewCast(a.cfg.Demo))

			return a.printer.Err()
		},
	}
}
