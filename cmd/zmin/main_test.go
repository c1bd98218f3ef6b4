package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydepwns/zmin-go/zmin"
)

func TestRunMinify_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{ "a" : [1, 2,  3] }`), 0o644))

	require.NoError(t, runMinify([]string{in, out}, "sport", false))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2,3]}`, string(got))
}

func TestRunMinify_GzipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	outGz := filepath.Join(dir, "out.json.gz")
	require.NoError(t, os.WriteFile(in, []byte("[ 1,\n2 ]"), 0o644))

	require.NoError(t, runMinify([]string{in, outGz}, "eco", false))

	got, err := readInput(outGz)
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(got))
}

func TestRunMinify_Stats(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(`{ "a" : 1 }`), 0o644))

	require.NotNil(t, logger)
	require.NoError(t, runMinify([]string{in, out}, "sport", true))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestRunMinify_InvalidMode(t *testing.T) {
	err := runMinify(nil, "ludicrous", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, zmin.ErrInvalidMode)
}

func TestRunMinify_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(in, []byte(`{"a":}`), 0o644))

	err := runMinify([]string{in, filepath.Join(dir, "out.json")}, "sport", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, zmin.ErrInvalidJSON)
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"ok":true}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"ok":`), 0o644))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"validate", good})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "valid")

	buf.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"validate", bad})
	assert.Error(t, cmd.Execute())
	assert.Contains(t, buf.String(), "invalid")
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), zmin.Version)
}
