/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	"github.com/NVIDIA/calculator-registry/pkg/defaults"
	"github.com/NVIDIA/calculator-registry/pkg/logging"
)

const (
	name           = "calcreg"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// NewApp builds the root command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Inspect and exercise the calculator registry",
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   defaults.LogLevel,
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars(defaults.LogLevelEnv),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			revs := calculator.Install()
			slog.Debug("calculators installed", "count", revs.Len())
			return ctx, nil
		},
		Commands: []*cli.Command{
			listCmd(),
			checkCmd(),
			runCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
