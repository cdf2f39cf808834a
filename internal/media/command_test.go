//go:build unix

package media

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Validates(t *testing.T) {
	_, err := NewCommand(nil, nil)
	assert.Error(t, err)

	_, err = NewCommand([]string{"mpv", "--no-video"}, nil)
	assert.ErrorContains(t, err, FilePlaceholder)
}

func TestCommand_PlayWithoutTrack(t *testing.T) {
	c, err := NewCommand([]string{"sh", "-c", "exit 0", FilePlaceholder}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Play(context.Background()), ErrNoTrack)
}

func TestCommand_NaturalExitSignalsEnd(t *testing.T) {
	c, err := NewCommand([]string{"sh", "-c", "exit 0", FilePlaceholder}, nil)
	require.NoError(t, err)
	require.NoError(t, c.Load(Track{Title: "short", File: "short.mp3"}, 7))
	require.NoError(t, c.Play(context.Background()))

	select {
	case gen := <-c.Ended():
		assert.Equal(t, uint64(7), gen)
	case <-time.After(5 * time.Second):
		t.Fatal("end of track not reported")
	}
}

func TestCommand_LoadStopsWithoutSignallingEnd(t *testing.T) {
	c, err := NewCommand([]string{"sh", "-c", "sleep 30", FilePlaceholder}, nil)
	require.NoError(t, err)
	require.NoError(t, c.Load(Track{File: "a.mp3"}, 1))
	require.NoError(t, c.Play(context.Background()))
	require.NoError(t, c.Pause())
	require.NoError(t, c.Play(context.Background()))

	require.NoError(t, c.Load(Track{File: "b.mp3"}, 2))
	require.NoError(t, c.Close())

	select {
	case <-c.Ended():
		t.Fatal("killed process reported as finished")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCommand_Args(t *testing.T) {
	c, err := NewCommand([]string{"player", "--volume=" + VolumePlaceholder, FilePlaceholder}, nil)
	require.NoError(t, err)
	c.SetVolume(0.5)
	c.track = &Track{File: "/music/song.mp3"}

	assert.Equal(t, []string{"--volume=50", "/music/song.mp3"}, c.args())

	c.SetVolume(7)
	assert.Equal(t, []string{"--volume=100", "/music/song.mp3"}, c.args())
}

func TestCommand_PlayHonoursCancelledContext(t *testing.T) {
	c, err := NewCommand([]string{"sh", "-c", "exit 0", FilePlaceholder}, nil)
	require.NoError(t, err)
	require.NoError(t, c.Load(Track{File: "x"}, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Play(ctx), context.Canceled)
}
