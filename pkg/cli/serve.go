/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	"github.com/NVIDIA/calculator-registry/pkg/counter"
	"github.com/NVIDIA/calculator-registry/pkg/defaults"
	"github.com/NVIDIA/calculator-registry/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve registry introspection, counters and metrics over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address (empty for all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   defaults.ServerPort,
				Usage:   "listen port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.DurationFlag{
				Name:  "publish-interval",
				Value: defaults.PublishInterval,
				Usage: "how often the process counter table is published",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name + "-server"
			cfg.Version = version
			cfg.Address = cmd.String("address")
			cfg.Port = int(cmd.Int("port"))
			cfg.PublishInterval = cmd.Duration("publish-interval")
			cfg.Catalogs = []server.Catalog{calculator.Registry()}
			cfg.Counters = counter.Default()

			return server.RunWithConfig(ctx, cfg)
		},
	}
}
