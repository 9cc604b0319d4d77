package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/calculator-registry/pkg/calculator"
	cerrors "github.com/NVIDIA/calculator-registry/pkg/errors"
	"github.com/NVIDIA/calculator-registry/pkg/serializer"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	app := NewApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(context.Background(), append([]string{name}, args...))
	return stdout.String(), stderr.String(), err
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{"valid yaml format", "yaml", serializer.FormatYAML, false},
		{"valid json format", "json", serializer.FormatJSON, false},
		{"valid table format", "table", serializer.FormatTable, false},
		{"invalid format xml", "xml", "", true},
		{"empty format", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestParseParams(t *testing.T) {
	got, err := parseParams([]string{"value=42", "empty=", " spaced =x=y"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"value": "42", "empty": "", "spaced": "x=y"}, got)

	for _, bad := range []string{"novalue", "=x"} {
		_, err := parseParams([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestListCommand(t *testing.T) {
	out, _, err := runApp(t, "list", "--format", "json")
	require.NoError(t, err)

	var listing Listing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, "calculators", listing.Registry)
	assert.Contains(t, listing.TopNamespaces, calculator.Namespace)
	for _, n := range calculator.Builtins().Names() {
		assert.Contains(t, listing.Names, n)
	}
	assert.Contains(t, listing.Names, "PassThroughCalculator")
}

func TestListCommand_UnknownFormat(t *testing.T) {
	_, _, err := runApp(t, "list", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCheckCommand(t *testing.T) {
	out, _, err := runApp(t, "check", "PassThroughCalculator", calculator.ConstantName)
	require.NoError(t, err)
	assert.Contains(t, out, "PassThroughCalculator: registered")

	out, _, err = runApp(t, "check", "mediapipe.Missing")
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeNotFound))
	assert.Contains(t, out, "mediapipe.Missing: not registered")

	_, _, err = runApp(t, "check")
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeInvalidRequest))
}

func TestRunCommand(t *testing.T) {
	out, stderr, err := runApp(t, "run",
		"--calculator", "PassThroughCalculator",
		"--calculator", calculator.PacketCounterName,
		"--packets", "3",
	)
	require.NoError(t, err)

	var res RunResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Outputs["PassThroughCalculator"], 3)
	assert.Len(t, res.Outputs[calculator.PacketCounterName], 3)
	assert.Equal(t, int64(3), res.Counters["node_1.packets"])
	assert.Contains(t, stderr, "node_1.packets: 3")
}

func TestRunCommand_Constant(t *testing.T) {
	out, _, err := runApp(t, "run", "-c", "ConstantCalculator", "-p", "value=42", "--format", "json")
	require.NoError(t, err)

	var res RunResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Outputs["ConstantCalculator"], 1)
	assert.Equal(t, "42", res.Outputs["ConstantCalculator"][0].Payload)
}

func TestRunCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code cerrors.ErrorCode
	}{
		{"unknown calculator", []string{"run", "-c", "mediapipe.Nope"}, cerrors.ErrCodeNotFound},
		{"factory failure", []string{"run", "-c", "ConstantCalculator"}, cerrors.ErrCodeInvalidRequest},
		{"bad param", []string{"run", "-c", "PassThroughCalculator", "-p", "oops"}, cerrors.ErrCodeInvalidRequest},
		{"negative packets", []string{"run", "-c", "PassThroughCalculator", "--packets=-1"}, cerrors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runApp(t, tt.args...)
			require.Error(t, err)
			assert.True(t, cerrors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestServeCommand_Flags(t *testing.T) {
	cmd := NewApp().Command("serve")
	require.NotNil(t, cmd)

	var names []string
	for _, f := range cmd.Flags {
		names = append(names, f.Names()...)
	}
	assert.Subset(t, names, []string{"address", "port", "publish-interval"})
}
