package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memento/internal/storage"
)

func init() {
	color.NoColor = true
}

func TestPrintState(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.NoteKey, "buy\nflowers"))
	require.NoError(t, store.Set(storage.PositionsKey, `{"1":{"X":1,"Y":2},"4":{"X":3,"Y":4}}`))

	var out bytes.Buffer
	require.NoError(t, printState(&out, store))

	text := out.String()
	assert.Contains(t, text, storage.NoteKey)
	assert.Contains(t, text, "buy ⏎ flowers")
	assert.Contains(t, text, "2 moved thumbnails")
}

func TestPrintStateEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printState(&out, storage.NewMemory()))
	assert.Contains(t, out.String(), "(empty)")
}

func TestDescribeMalformedPositions(t *testing.T) {
	assert.True(t, strings.HasPrefix(describe(storage.PositionsKey, "{"), "malformed"))
}

func TestResetCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeConfig(t, cfgPath, dir)

	store, err := storage.OpenDisk(filepath.Join(dir, "data"))
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.NoteKey, "hi"))
	require.NoError(t, store.Set(storage.PositionsKey, "{}"))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", cfgPath, "reset", "--note"})
	require.NoError(t, root.Execute())

	assert.Equal(t, []string{storage.PositionsKey}, store.Keys())
	assert.Contains(t, out.String(), "reset done")
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "memento dev\n", out.String())
}

func writeConfig(t *testing.T, path, dir string) {
	t.Helper()
	body := "[storage]\ndir = \"" + filepath.ToSlash(filepath.Join(dir, "data")) + "\"\n" +
		"[log]\nfile = \"" + filepath.ToSlash(filepath.Join(dir, "memento.log")) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestPrintLogs(t *testing.T) {
	var out bytes.Buffer
	lines := []string{
		`{"level":"INFO","msg":"starting","tracks":2}`,
		"plain line",
	}
	require.NoError(t, printLogs(&out, lines))
	assert.Equal(t, "INFO  starting tracks=2\nplain line\n", out.String())
}
