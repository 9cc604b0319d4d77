/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	"github.com/NVIDIA/calculator-registry/pkg/namespace"
)

// Listing is the list command output.
type Listing struct {
	Registry      string   `json:"registry" yaml:"registry"`
	TopNamespaces []string `json:"topNamespaces" yaml:"topNamespaces"`
	Names         []string `json:"names" yaml:"names"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List registered calculator names",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			reg := calculator.Registry()
			listing := Listing{
				Registry:      reg.Name(),
				TopNamespaces: namespace.TopNamespaces(),
				Names:         reg.GetRegisteredNames(),
			}

			w := newWriter(cmd, outFormat)
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()
			return w.Serialize(ctx, listing)
		},
	}
}
