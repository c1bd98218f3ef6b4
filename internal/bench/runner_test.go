package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydepwns/zmin-go/zmin"
)

func TestRunner_GeneratedCase(t *testing.T) {
	suite := &Suite{
		Name: "runner test",
		Cases: []Case{
			{
				Name:       "small generated",
				Generate:   &GenerateSpec{SizeMB: 0.05, Seed: 7},
				Iterations: 2,
			},
		},
	}

	results, err := NewRunner(suite).Run()
	require.NoError(t, err)
	require.Len(t, results, 3) // all modes by default

	for _, r := range results {
		assert.Equal(t, "small generated", r.Case)
		assert.Equal(t, 2, r.Iterations)
		assert.Greater(t, r.InputBytes, 0)
		assert.Greater(t, r.OutputBytes, 0)
		assert.Less(t, r.OutputBytes, r.InputBytes, "minified output should shrink")
		assert.Greater(t, r.SavedPct, 0.0)
		assert.Greater(t, r.Best.Nanoseconds(), int64(0))
		assert.GreaterOrEqual(t, r.Avg, r.Best)
	}
}

func TestRunner_FileCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ "a" : [1, 2,  3] }`), 0o644))

	suite := &Suite{
		Cases: []Case{
			{Name: "from file", File: path, Modes: []string{"sport"}, Iterations: 1},
		},
	}
	results, err := NewRunner(suite).Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, zmin.Sport, results[0].Mode)
	assert.Equal(t, len(`{"a":[1,2,3]}`), results[0].OutputBytes)
}

func TestRunner_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":}`), 0o644))

	suite := &Suite{
		Cases: []Case{
			{Name: "broken", File: path, Modes: []string{"sport"}},
		},
	}
	_, err := NewRunner(suite).Run()
	assert.Error(t, err)
	assert.ErrorIs(t, err, zmin.ErrInvalidJSON)
}

func TestWriteTable(t *testing.T) {
	results := []Result{
		{Case: "c1", Mode: zmin.Sport, InputBytes: 2048, OutputBytes: 1024, SavedPct: 50},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, results))
	out := buf.String()
	assert.Contains(t, out, "CASE")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "sport")
	assert.Contains(t, out, "50.0%")
}

func TestWriteCSV(t *testing.T) {
	results := []Result{
		{Case: "c1", Mode: zmin.Turbo, InputBytes: 10, OutputBytes: 8, SavedPct: 20},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "case,mode,input_bytes")
	assert.Contains(t, lines[1], "c1,turbo,10,8")
}
