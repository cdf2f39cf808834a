package playback

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/memento/internal/media"
)

type fakePlayer struct {
	loaded  []string
	plays   int
	pauses  int
	volume  float64
	playErr error
}

func (f *fakePlayer) Load(t media.Track, _ uint64) error {
	f.loaded = append(f.loaded, t.Title)
	return nil
}

func (f *fakePlayer) Play(context.Context) error {
	f.plays++
	return f.playErr
}

func (f *fakePlayer) Pause() error {
	f.pauses++
	return nil
}

func (f *fakePlayer) SetVolume(v float64) { f.volume = v }
func (f *fakePlayer) Ended() <-chan uint64 { return nil }
func (f *fakePlayer) Close() error { return nil }

func catalog(n int) []media.Track {
	titles := []string{"one", "two", "three", "four"}
	out := make([]media.Track, n)
	for i := range out {
		out[i] = media.Track{Title: titles[i], File: titles[i] + ".mp3"}
	}
	return out
}

// start runs a request to completion and reports it back.
func start(t *testing.T, m *Machine, req *StartRequest) {
	t.Helper()
	require.NotNil(t, req)
	m.Started(req.Token, req.Run(context.Background()))
}

func TestNew_LoadsFirstTrack(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(3), nil)

	assert.Equal(t, []string{"one"}, p.loaded)
	assert.Equal(t, Stopped, m.State())
	assert.InDelta(t, 0.75, p.volume, 1e-9)
	tr, ok := m.Track()
	require.True(t, ok)
	assert.Equal(t, "one", tr.Title)
}

func TestPlay_OnlyConfirmedStartPlays(t *testing.T) {
	m := New(&fakePlayer{}, catalog(2), nil)

	req := m.Play()
	require.NotNil(t, req)
	assert.False(t, m.Playing())
	assert.True(t, m.Pending())

	m.Started(req.Token, nil)
	assert.True(t, m.Playing())
	assert.Equal(t, Playing, m.State())
}

func TestPlay_FailureLeavesNotPlaying(t *testing.T) {
	p := &fakePlayer{playErr: errors.New("autoplay blocked")}
	m := New(p, catalog(2), nil)

	start(t, m, m.Play())
	assert.False(t, m.Playing())
	assert.False(t, m.Pending())
	assert.Equal(t, Stopped, m.State())
}

func TestNext_WrapsAfterNSteps(t *testing.T) {
	for n := 1; n <= 4; n++ {
		m := New(&fakePlayer{}, catalog(n), nil)
		for i := 0; i < n; i++ {
			m.Next()
		}
		assert.Equal(t, 0, m.Index(), "n=%d", n)
	}
}

func TestPrev_Wraps(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(3), nil)
	m.Prev()
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, []string{"one", "three"}, p.loaded)
}

func TestNext_ResumesWhenPlaying(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(3), nil)
	start(t, m, m.Play())
	require.True(t, m.Playing())

	req := m.Next()
	require.NotNil(t, req)
	assert.True(t, req.Resume)
	assert.True(t, m.Resuming())
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, "two", p.loaded[len(p.loaded)-1])

	start(t, m, req)
	assert.True(t, m.Playing())
	assert.False(t, m.Resuming())
}

func TestNext_StaysQuietWhenPaused(t *testing.T) {
	m := New(&fakePlayer{}, catalog(3), nil)
	start(t, m, m.Play())
	m.Pause()

	assert.Nil(t, m.Next())
	assert.False(t, m.Playing())
	assert.Equal(t, Paused, m.State())
}

func TestResumeFlagClearedOnFailure(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(2), nil)
	start(t, m, m.Play())

	p.playErr = errors.New("device gone")
	start(t, m, m.Next())

	assert.False(t, m.Playing())
	assert.False(t, m.Resuming())
}

func TestTrackEnded_AdvancesAndPlays(t *testing.T) {
	m := New(&fakePlayer{}, catalog(3), nil)
	start(t, m, m.Play())

	req := m.TrackEnded(m.Generation())
	require.NotNil(t, req)
	assert.Equal(t, 1, m.Index())
	start(t, m, req)
	assert.True(t, m.Playing())
}

func TestTrackEnded_AfterSkipIsIgnored(t *testing.T) {
	m := New(&fakePlayer{}, catalog(3), nil)
	start(t, m, m.Play())
	ending := m.Generation()

	start(t, m, m.Next())
	assert.Nil(t, m.TrackEnded(ending))
	assert.Equal(t, 1, m.Index())
	assert.True(t, m.Playing())

	require.NotNil(t, m.TrackEnded(m.Generation()))
	assert.Equal(t, 2, m.Index())
}

func TestTrackEnded_SingleTrackStops(t *testing.T) {
	m := New(&fakePlayer{}, catalog(1), nil)
	start(t, m, m.Play())

	assert.Nil(t, m.TrackEnded(m.Generation()))
	assert.Equal(t, Stopped, m.State())
	assert.False(t, m.Playing())
	assert.Equal(t, 0, m.Index())
}

func TestStaleStartIsRepaused(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(2), nil)

	req := m.Play()
	m.Pause()
	pauses := p.pauses

	m.Started(req.Token, req.Run(context.Background()))

	assert.False(t, m.Playing())
	assert.Equal(t, pauses+1, p.pauses, "late success must be silenced")
}

func TestStaleStartDoesNotPauseNewerPlayback(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(2), nil)

	first := m.Play()
	m.Pause()
	second := m.Play()
	start(t, m, second)
	pauses := p.pauses

	m.Started(first.Token, nil)

	assert.True(t, m.Playing())
	assert.Equal(t, pauses, p.pauses)
}

func TestToggle(t *testing.T) {
	m := New(&fakePlayer{}, catalog(2), nil)

	req := m.Toggle()
	require.NotNil(t, req)
	assert.Nil(t, m.Toggle(), "toggle while starting pauses")
	assert.False(t, m.Pending())

	start(t, m, m.Toggle())
	assert.True(t, m.Playing())
	assert.Nil(t, m.Toggle())
	assert.False(t, m.Playing())
}

func TestSetVolume_Clamps(t *testing.T) {
	p := &fakePlayer{}
	m := New(p, catalog(1), nil)

	assert.Equal(t, 0, m.SetVolume(-10))
	assert.Equal(t, 100, m.SetVolume(250))
	assert.Equal(t, 40, m.SetVolume(40))
	assert.InDelta(t, 0.4, p.volume, 1e-9)
	assert.Equal(t, 40, m.Volume())
}

func TestEmptyCatalog(t *testing.T) {
	m := New(&fakePlayer{}, nil, nil)

	assert.Nil(t, m.Play())
	assert.Nil(t, m.Next())
	assert.Nil(t, m.TrackEnded(m.Generation()))
	_, ok := m.Track()
	assert.False(t, ok)
}
