package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exercise(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get(NoteKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(NoteKey, "buy flowers\nand cake"))
	require.NoError(t, s.Set(PositionsKey, `{"1":{"left":3,"top":4}}`))

	v, ok, err := s.Get(NoteKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "buy flowers\nand cake", v)

	assert.Equal(t, []string{NoteKey, PositionsKey}, s.Keys())

	require.NoError(t, s.Delete(NoteKey))
	require.NoError(t, s.Delete(NoteKey))
	_, ok, err = s.Get(NoteKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{PositionsKey}, s.Keys())
}

func TestMemory(t *testing.T) {
	exercise(t, NewMemory())
}

func TestMemoryZeroValue(t *testing.T) {
	var m Memory
	require.NoError(t, m.Set("k", "v"))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := OpenDisk(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Path())
	exercise(t, s)
}

func TestDiskSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenDisk(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(NoteKey, "remember me"))

	reopened, err := OpenDisk(dir)
	require.NoError(t, err)
	v, ok, err := reopened.Get(NoteKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "remember me", v)

	_, err = os.Stat(filepath.Join(dir, NoteKey))
	assert.NoError(t, err)
}

func TestOpenDiskRejectsEmptyPath(t *testing.T) {
	_, err := OpenDisk("  ")
	assert.ErrorIs(t, err, ErrUnavailable)
}
