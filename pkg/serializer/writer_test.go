package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type listing struct {
	Registry string   `json:"registry" yaml:"registry"`
	Names    []string `json:"names" yaml:"names"`
}

type rows struct{}

func (rows) TableHeader() []string { return []string{"NAME", "COUNT"} }
func (rows) TableRows() [][]string { return [][]string{{"a", "1"}, {"bb", "22"}} }

func TestFormat_IsUnknown(t *testing.T) {
	for _, f := range SupportedFormats() {
		assert.False(t, Format(f).IsUnknown(), f)
	}
	assert.True(t, Format("xml").IsUnknown())
	assert.True(t, Format("").IsUnknown())
}

func TestNewWriter_Defaults(t *testing.T) {
	w := NewWriter("xml", nil)
	assert.Equal(t, FormatJSON, w.format)
	assert.Equal(t, os.Stdout, w.output)
	assert.NoError(t, w.Close())
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	in := listing{Registry: "calculators", Names: []string{"a.B"}}

	require.NoError(t, NewWriter(FormatJSON, &buf).Serialize(context.Background(), in))

	var out listing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	in := listing{Registry: "calculators", Names: []string{"a.B", "C"}}

	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), in))

	var out listing
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}

func TestWriter_TableFlatten(t *testing.T) {
	var buf bytes.Buffer
	in := listing{Registry: "calculators", Names: []string{"x.Y"}}

	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), in))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Names.[0]")
	assert.Contains(t, out, "x.Y")
	assert.Contains(t, out, "calculators")
}

func TestWriter_TableTabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), rows{}))

	assert.Equal(t, "NAME  COUNT\n----  -----\na     1\nbb    22\n", buf.String())
}

func TestWriter_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), map[string]int{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestFlatten(t *testing.T) {
	var nilPtr *listing
	tests := []struct {
		name string
		in   any
		want [][]string
	}{
		{"scalar", 5, [][]string{{"value", "5"}}},
		{"map", map[string]int64{"b": 2, "a": 1}, [][]string{{"a", "1"}, {"b", "2"}}},
		{"nil pointer", nilPtr, [][]string{}},
		{"nested", struct{ In map[string][]int }{In: map[string][]int{"k": {7}}}, [][]string{{"In.k.[0]", "7"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flatten(tt.in))
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w := NewFileWriterOrStdout(FormatJSON, path)
	require.NoError(t, w.Serialize(context.Background(), listing{Registry: "r"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"registry": "r"`)

	std := NewFileWriterOrStdout(FormatYAML, "  ")
	assert.Equal(t, os.Stdout, std.output)
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, map[string]int{"a": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"a":1}`, w.Body.String())
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
