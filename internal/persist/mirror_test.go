package persist

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/state"
	"github.com/five82/memento/internal/storage"
)

type failingStore struct {
	getErr error
	setErr error
	sets   int
}

func (f *failingStore) Get(string) (string, bool, error) { return "", false, f.getErr }
func (f *failingStore) Set(string, string) error {
	f.sets++
	return f.setErr
}
func (f *failingStore) Delete(string) error { return f.setErr }
func (f *failingStore) Keys() []string      { return nil }

func newMirror(store storage.Store) (*Mirror, *state.Session) {
	session := state.NewSession()
	m := NewMirror(Options{
		Store:   store,
		Session: session,
		Thumb:   geometry.SizeOf(120, 120),
		Insets:  geometry.PixelInsets(),
	})
	return m, session
}

func TestRoundTrip(t *testing.T) {
	store := storage.NewMemory()
	m, session := newMirror(store)
	m.Load()

	session.SetNoteText("meet at 7")
	m.SetPosition(1, geometry.Point{X: 200, Y: 300})
	m.SetPosition(4, geometry.Point{X: 500.5, Y: 160})

	again, restored := newMirror(store)
	again.Load()

	assert.Equal(t, "meet at 7", restored.NoteText())
	assert.Equal(t, m.Positions(), again.Positions())
}

func TestLoad_MissingKeysKeepDefaults(t *testing.T) {
	m, session := newMirror(storage.NewMemory())
	m.Load()

	assert.Empty(t, session.NoteText())
	assert.Empty(t, m.Positions())
	assert.True(t, m.NoteLoaded())
	assert.True(t, m.PositionsLoaded())
}

func TestLoad_CorruptedPositionsFallBack(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.PositionsKey, "{not json"))
	require.NoError(t, store.Set(storage.NoteKey, "still here"))

	m, session := newMirror(store)
	m.Load()

	assert.Empty(t, m.Positions())
	assert.True(t, m.PositionsLoaded())
	assert.Equal(t, "still here", session.NoteText(), "note load is independent")

	m.SetPosition(2, geometry.Point{X: 1, Y: 1})
	raw, _, _ := store.Get(storage.PositionsKey)
	var saved Positions
	require.NoError(t, json.Unmarshal([]byte(raw), &saved), "first save replaces the corrupted blob")
	assert.Equal(t, geometry.Point{X: 1, Y: 1}, saved[2])
}

func TestRescale_ClampsBeforeLoad(t *testing.T) {
	store := &failingStore{getErr: storage.ErrUnavailable}
	m, _ := newMirror(store)
	m.Load()
	require.False(t, m.PositionsLoaded())

	m.SetPosition(1, geometry.Point{X: 5000, Y: 5000})
	viewport := geometry.SizeOf(1280, 800)
	got := m.Rescale(viewport)

	assert.True(t, m.Bounds(viewport).Contains(got[1]), "position %v left outside the desktop", got[1])
	assert.Zero(t, store.sets, "nothing written without a successful load")
}

func TestLoad_StorageErrorIsSwallowed(t *testing.T) {
	store := &failingStore{getErr: storage.ErrUnavailable}
	m, session := newMirror(store)

	require.NotPanics(t, m.Load)
	session.SetNoteText("typed before storage came back")
	m.SetPosition(1, geometry.Point{X: 1, Y: 2})

	assert.Zero(t, store.sets, "nothing written without a successful load")
	assert.Equal(t, "typed before storage came back", session.NoteText())
}

func TestWrites_FailuresAreSwallowed(t *testing.T) {
	store := &failingStore{setErr: errors.New("quota exceeded")}
	m, session := newMirror(store)
	m.Load()

	session.SetNoteText("x")
	m.SetPosition(1, geometry.Point{X: 1, Y: 2})

	assert.Equal(t, 2, store.sets)
	assert.Equal(t, "x", session.NoteText())
}

func TestNoWritesBeforeLoad(t *testing.T) {
	store := storage.NewMemory()
	m, session := newMirror(store)

	session.SetNoteText("early")
	m.SetPosition(1, geometry.Point{X: 1, Y: 1})

	assert.Empty(t, store.Keys())
}

func TestEmptyPositionsAreNotWritten(t *testing.T) {
	store := storage.NewMemory()
	m, _ := newMirror(store)
	m.Load()

	m.SavePositions()
	_, ok, err := store.Get(storage.PositionsKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTrackWritesOnlyOnSave(t *testing.T) {
	store := storage.NewMemory()
	m, _ := newMirror(store)
	m.Load()

	m.Track(3, geometry.Point{X: 10, Y: 20})
	p, ok := m.Position(3)
	require.True(t, ok)
	assert.Equal(t, geometry.Point{X: 10, Y: 20}, p)
	assert.Empty(t, store.Keys())

	m.SavePositions()
	raw, ok, err := store.Get(storage.PositionsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"3":{"left":10,"top":20}}`, raw)
}

func TestResetPositions(t *testing.T) {
	store := storage.NewMemory()
	m, _ := newMirror(store)
	m.Load()
	m.SetPosition(1, geometry.Point{X: 1, Y: 1})

	m.ResetPositions()

	assert.Empty(t, m.Positions())
	_, ok, _ := store.Get(storage.PositionsKey)
	assert.False(t, ok)
}

func TestRescale_PreservesRelativePlacement(t *testing.T) {
	store := storage.NewMemory()
	m, _ := newMirror(store)
	m.Load()

	big := geometry.SizeOf(1600, 1000)
	b := m.Bounds(big)
	m.SetPosition(1, b.Center())
	m.SetPosition(2, geometry.Point{X: b.MinX, Y: b.MaxY})
	m.Rescale(big)

	small := geometry.SizeOf(1000, 800)
	got := m.Rescale(small)
	nb := m.Bounds(small)

	assert.InDelta(t, nb.Center().X, got[1].X, 1e-9)
	assert.InDelta(t, nb.Center().Y, got[1].Y, 1e-9)
	assert.InDelta(t, nb.MinX, got[2].X, 1e-9)
	assert.InDelta(t, nb.MaxY, got[2].Y, 1e-9)

	raw, ok, err := store.Get(storage.PositionsKey)
	require.NoError(t, err)
	require.True(t, ok)
	var saved Positions
	require.NoError(t, json.Unmarshal([]byte(raw), &saved))
	assert.Equal(t, got, saved)
}

func TestRescale_FirstCallClamps(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.PositionsKey, `{"1":{"left":-50,"top":99999}}`))
	m, _ := newMirror(store)
	m.Load()

	viewport := geometry.SizeOf(1600, 1000)
	got := m.Rescale(viewport)
	b := m.Bounds(viewport)

	assert.Equal(t, geometry.Point{X: b.MinX, Y: b.MaxY}, got[1])
}

func TestPositionsJSON(t *testing.T) {
	var p Positions
	require.NoError(t, json.Unmarshal([]byte(`{"1":{"left":3,"top":4},"x":{"left":1,"top":1},"2":{"left":5}}`), &p))
	assert.Equal(t, Positions{1: {X: 3, Y: 4}}, p)

	data, err := json.Marshal(Positions{7: {X: 1.5, Y: 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"7":{"left":1.5,"top":2}}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`null`), &p))
}
