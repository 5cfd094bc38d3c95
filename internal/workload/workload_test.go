package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	spec, err := ParseYAML([]byte(`
processes:
  - arrival_time: 0
    burst_time: 5
    priority: 2
  - arrival_time: 3
    burst_time: 1
`))
	require.NoError(t, err)
	assert.Equal(t, []ProcessSpec{{0, 5, 2}, {3, 1, 0}}, spec.Processes)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "processes:\n  - arrival_time: 0\n    burst: 5\n",
		"zero burst":     "processes:\n  - arrival_time: 0\n    burst_time: 0\n",
		"negative start": "processes:\n  - arrival_time: -1\n    burst_time: 2\n",
		"not a number":   "processes:\n  - arrival_time: soon\n    burst_time: 2\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseYAML([]byte("processes:\n  - arrival_time: 0\n    burst_time: -4\n"))
	assert.ErrorIs(t, err, ErrInvalidProcess)
}

func TestParseYAML_Empty(t *testing.T) {
	spec, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Empty(t, spec.Processes)
}

func TestParseCSV(t *testing.T) {
	spec, err := ParseCSV(strings.NewReader("arrival,burst,priority\n0,5,2\n1, 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []ProcessSpec{{0, 5, 2}, {1, 3, 0}}, spec.Processes)
}

func TestParseCSV_Errors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("0,5,2\n1,x,0\n"))
	assert.ErrorIs(t, err, ErrInvalidProcess)

	_, err = ParseCSV(strings.NewReader("0\n"))
	assert.ErrorIs(t, err, ErrInvalidProcess)

	_, err = ParseCSV(strings.NewReader("0,0,1\n"))
	assert.ErrorIs(t, err, ErrInvalidProcess)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "w.yaml")
	csvPath := filepath.Join(dir, "w.csv")
	txtPath := filepath.Join(dir, "w.txt")
	require.NoError(t, os.WriteFile(yamlPath, []byte("processes:\n  - arrival_time: 1\n    burst_time: 2\n"), 0o600))
	require.NoError(t, os.WriteFile(csvPath, []byte("1,2,3\n"), 0o600))
	require.NoError(t, os.WriteFile(txtPath, []byte("1,2,3\n"), 0o600))

	spec, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []ProcessSpec{{1, 2, 0}}, spec.Processes)

	spec, err = LoadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []ProcessSpec{{1, 2, 3}}, spec.Processes)

	_, err = LoadFile(txtPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSpec_Registry(t *testing.T) {
	spec := &Spec{Processes: []ProcessSpec{{0, 5, 2}, {1, 3, 1}}}

	registry := spec.Registry()

	list := registry.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
	assert.Equal(t, 3, list[1].BurstTime)
	assert.Equal(t, 1, list[1].Priority)
}
