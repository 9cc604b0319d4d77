/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	"github.com/NVIDIA/calculator-registry/pkg/errors"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Verify that calculator names are registered",
		ArgsUsage: "NAME [NAME...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return errors.New(errors.ErrCodeInvalidRequest, "at least one calculator name is required")
			}

			reg := calculator.Registry()
			var missing []string
			for _, n := range cmd.Args().Slice() {
				if reg.IsRegistered(n) {
					fmt.Fprintf(cmd.Root().Writer, "%s: registered\n", n)
					continue
				}
				fmt.Fprintf(cmd.Root().Writer, "%s: not registered\n", n)
				missing = append(missing, n)
			}
			if len(missing) > 0 {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					fmt.Sprintf("%d calculator(s) not registered", len(missing)),
					map[string]any{"names": missing})
			}
			return nil
		},
	}
}
