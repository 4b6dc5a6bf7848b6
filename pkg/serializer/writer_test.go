package serializer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testDoc struct {
	Name    string            `json:"name" yaml:"name"`
	Count   int               `json:"count" yaml:"count"`
	Labels  map[string]string `json:"labels" yaml:"labels"`
	private string
}

func sampleDoc() testDoc {
	return testDoc{
		Name:   "web-1",
		Count:  2,
		Labels: map[string]string{"role": "proxy"},
	}
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), sampleDoc()))
	assert.JSONEq(t, `{"name":"web-1","count":2,"labels":{"role":"proxy"}}`, buf.String())
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), sampleDoc()))

	var got testDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "web-1", got.Name)
	assert.Equal(t, 2, got.Count)
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), sampleDoc()))

	out := buf.String()
	assert.Contains(t, out, "Field")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "web-1")
	assert.Contains(t, out, "Labels.role")
	assert.NotContains(t, out, "private", "unexported fields are skipped")
}

func TestWriterTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriterTableScalar(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), "hello"))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "hello")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(context.Background(), map[string]string{"a": "b"}))
	assert.JSONEq(t, `{"a":"b"}`, buf.String())
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, s.Serialize(context.Background(), sampleDoc()))
	if c, ok := s.(Closer); ok {
		require.NoError(t, c.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"web-1"`))
}

func TestNewFileWriterOrStdoutEmptyPath(t *testing.T) {
	s := NewFileWriterOrStdout(FormatYAML, "   ")
	w, ok := s.(*Writer)
	require.True(t, ok)
	assert.NoError(t, w.Close(), "stdout writer close is a no-op")
}

func TestSupportedFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"json", "yaml", "table"}, SupportedFormats())
	assert.False(t, FormatJSON.IsUnknown())
	assert.True(t, Format("csv").IsUnknown())
}
