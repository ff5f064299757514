package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/campominato/internal/game"
	"github.com/samdwyer/campominato/internal/logging"
	"github.com/samdwyer/campominato/internal/telemetry"
)

// options holds the command line settings.
type options struct {
	seed        int64
	logFile     string
	logLevel    string
	noTelemetry bool
}

// defaultOptions reads flag defaults from CAMPOMINATO_* environment variables.
func defaultOptions() options {
	opts := options{
		logFile:  envOr("CAMPOMINATO_LOG_FILE", logging.DefaultFile),
		logLevel: envOr("CAMPOMINATO_LOG_LEVEL", logging.DefaultLevel),
	}
	if seed, err := strconv.ParseInt(os.Getenv("CAMPOMINATO_SEED"), 10, 64); err == nil {
		opts.seed = seed
	}
	return opts
}

// newRootCmd creates the root command.
func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "campominato",
		Short: "Minesweeper in the terminal",
		Long: `Campo Minato is an 8x8 Minesweeper with 10 mines.

Left click (or space/enter) reveals a cell, right click (or f) toggles a flag,
the Restart button (or r) starts over and q quits.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&opts.seed, "seed", opts.seed, "Seed for mine placement, 0 for random (env: CAMPOMINATO_SEED)")
	flags.StringVar(&opts.logFile, "log-file", opts.logFile, "Log file path (env: CAMPOMINATO_LOG_FILE)")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, error (env: CAMPOMINATO_LOG_LEVEL)")
	flags.BoolVar(&opts.noTelemetry, "no-telemetry", opts.noTelemetry, "Disable trace export")

	return cmd
}

// run wires logging and telemetry, then plays until the player quits.
func run(ctx context.Context, opts options) error {
	logger, err := logging.New(logging.Config{File: opts.logFile, Level: opts.logLevel})
	if err != nil {
		return err
	}

	if !opts.noTelemetry {
		shutdown := setupTelemetry(ctx, logger)
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.WithError(err).Warn("error shutting down telemetry")
			}
		}()
	}

	cfg := game.DefaultConfig()
	cfg.Seed = opts.seed

	g, err := game.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	defer g.Close()

	return g.Run(ctx)
}

// setupTelemetry starts trace export. Failure is logged and the game runs
// without observability.
func setupTelemetry(ctx context.Context, logger logrus.FieldLogger) func(context.Context) error {
	telemetry.ConfigureEnv(
		os.Getenv("HONEYCOMB_CAMPOMINATO_API_KEY"),
		os.Getenv("HONEYCOMB_CAMPOMINATO_DATASET"),
	)

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.WithError(err).Warn("telemetry setup failed, running without observability")
		return func(context.Context) error { return nil }
	}
	return shutdown
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
