package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/memlock"
	"github.com/spf13/cobra"
)

type app struct {
	logLevel  string
	logFormat string
	logger    *memlock.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "memlock",
		Short:         "Pin memory and map files",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(
		newLimitsCmd(a),
		newLockCmd(a),
		newMapCmd(a),
	)
	return cmd
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(a.logFormat) {
	case "text":
		a.logger = memlock.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	case "json":
		a.logger = memlock.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	default:
		return fmt.Errorf("invalid --log-format %q", a.logFormat)
	}
	return nil
}
