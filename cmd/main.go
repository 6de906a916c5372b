// Package main is the themepark CLI. It loads configuration, sets up
// logging and dispatches to the demo and describe subcommands.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"themepark/internal/config"
	"themepark/internal/console"
	"themepark/internal/park"
	"themepark/pkg/logger"
	"themepark/pkg/metrics"
	"themepark/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is what every subcommand needs once the root command has loaded the
// configuration.
type app struct {
	cfg     *config.Config
	printer *console.Printer
	metrics *metrics.Recorder
	op      park.Operator
}

// newApp wires the printer on w, the metrics recorder and the park operator,
// and returns a cleanup function that shuts the recorder down.
func newApp(ctx context.Context, cfg *config.Config, w io.Writer) (*app, func(), error) {
	printer := console.New(w, console.Options{Color: cfg.Output.Color})

	rec, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		return nil, nil, fmt.Errorf("could not create metrics recorder: %w", err)
	}

	a := &app{
		cfg:     cfg,
		printer: printer,
		metrics: rec,
		op:      park.New(park.Options{Announcer: printer, Metrics: rec}),
	}

	return a, func() {
		if err := rec.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shutdown metrics recorder", zap.Error(err))
		}
	}, nil
}

// newRootCommand builds the CLI. The configuration is loaded before any
// subcommand runs.
func newRootCommand() *cobra.Command {
	var (
		configPath string
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "themepark",
		Short:         "Runs a small theme park: rides, staff and visitors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			return logger.Setup(cfg.Environment, cfg.LogLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional)")

	getConfig := func() *config.Config { return cfg }
	rootCmd.AddCommand(
		demoCommand(getConfig),
		describeCommand(getConfig),
	)

	return rootCmd
}

// errorFields describes a failed command for the log.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	if k := serrors.KindOf(err); k != nil {
		fields = append(fields, zap.String("kind", k.Error()))
	}

	return fields
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", errorFields(err)...)
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
