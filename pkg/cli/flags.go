/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/calculator-registry/pkg/serializer"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
)

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// newWriter writes to --output when set, otherwise to the root command writer.
func newWriter(cmd *cli.Command, f serializer.Format) *serializer.Writer {
	if path := cmd.String("output"); strings.TrimSpace(path) != "" {
		return serializer.NewFileWriterOrStdout(f, path)
	}
	return serializer.NewWriter(f, cmd.Root().Writer)
}

// parseParams converts repeated key=value flags into a map.
func parseParams(values []string) (map[string]string, error) {
	params := make(map[string]string, len(values))
	for _, kv := range values {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", kv)
		}
		params[k] = v
	}
	return params, nil
}
