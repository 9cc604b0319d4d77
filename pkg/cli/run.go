/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	"github.com/NVIDIA/calculator-registry/pkg/counter"
	"github.com/NVIDIA/calculator-registry/pkg/defaults"
	"github.com/NVIDIA/calculator-registry/pkg/errors"
)

// RunResult is the run command output.
type RunResult struct {
	Outputs  map[string][]calculator.Packet `json:"outputs" yaml:"outputs"`
	Counters map[string]int64               `json:"counters" yaml:"counters"`
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Construct calculators by name and push packets through them",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "calculator",
				Aliases:  []string{"c"},
				Usage:    "calculator name to construct (can be repeated)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "node",
				Value: "node",
				Usage: "graph node name passed to every calculator",
			},
			&cli.StringSliceFlag{
				Name:    "param",
				Aliases: []string{"p"},
				Usage:   "calculator parameter as key=value (can be repeated)",
			},
			&cli.IntFlag{
				Name:  "packets",
				Value: defaults.RunPackets,
				Usage: "number of packets to push through each calculator",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.RunTimeout,
				Usage: "timeout for the whole run",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			params, err := parseParams(cmd.StringSlice("param"))
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid --param", err)
			}
			n := int(cmd.Int("packets"))
			if n < 0 {
				return errors.New(errors.ErrCodeInvalidRequest, "--packets must not be negative")
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			tbl := counter.New(
				counter.WithSink(counter.NewLogSink(slog.Default())),
				counter.WithOutput(cmd.Root().ErrWriter),
			)

			calcs := make(map[string]calculator.Calculator)
			for i, calcName := range cmd.StringSlice("calculator") {
				calc, err := calculator.Registry().CreateByName(calcName, calculator.Options{
					Node:     fmt.Sprintf("%s_%d", cmd.String("node"), i),
					Params:   params,
					Counters: tbl,
				})
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", calcName, err)
				}
				calcs[calcName] = calc
			}

			packets := make([]calculator.Packet, n)
			for i := range packets {
				packets[i] = calculator.Packet{Timestamp: int64(i), Payload: i}
			}

			outputs, err := calculator.RunAll(ctx, calcs, packets)
			if err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			res := RunResult{Outputs: outputs, Counters: tbl.Snapshot()}
			tbl.Print()
			if err := tbl.Close(); err != nil {
				slog.Warn("failed to publish counters", "error", err)
			}

			w := newWriter(cmd, outFormat)
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			return w.Serialize(ctx, res)
		},
	}
}
