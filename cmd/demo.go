package main

import (
	"fmt"
	"themepark/internal/config"
	"themepark/internal/scenario"
	"themepark/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCommand plays the demo day and, when asked, prints the park metrics
// after it.
func demoCommand(getConfig func() *config.Config) *cobra.Command {
	var printMetrics bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Plays the demo day and prints what happens",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := getConfig()

			out := cmd.OutOrStdout()

			a, cleanup, err := newApp(ctx, cfg, out)
			if err != nil {
				return err
			}
			defer cleanup()

			cast := scenario.NewCast(cfg.Demo)
			ctx = logger.WithFields(ctx, zap.String("command", "demo"))
			logger.Info(ctx, "starting demo day",
				zap.String("visitor", cfg.Demo.Visitor.Name),
				zap.String("manager", cfg.Demo.Manager.Name),
			)

			if err := scenario.Run(ctx, a.op, cast, a.printer); err != nil {
				return err
			}
			if err := a.printer.Err(); err != nil {
				return err
			}

			if printMetrics || cfg.Metrics.Print {
				if err := a.metrics.WriteText(out); err != nil {
					return fmt.Errorf("could not print metrics: %w", err)
				}
			}

			logger.Info(ctx, "demo day finished", zap.Strings("history", cast.Visitor.History()))

			return nil
		},
	}
	cmd.Flags().BoolVar(&printMetrics, "metrics", false, "Print park metrics after the demo")

	return cmd
}
