// Package media is the boundary between playback logic and whatever actually
// produces sound.
package media

import (
	"context"
	"errors"
)

// Track is one entry in the music catalog.
type Track struct {
	Title   string
	File    string
	Artwork string
}

// Player produces audio for one loaded track at a time.
//
// Load tags the track with a generation chosen by the caller. Ended delivers
// that generation each time the track plays to completion, so a caller that
// has already moved on can tell a late end from a current one.
//
// Play may block until output has started or failed; callers run it off the
// UI goroutine. Implementations must tolerate Pause or Load being called
// while a Play is in flight.
type Player interface {
	Load(t Track, gen uint64) error
	Play(ctx context.Context) error
	Pause() error
	// SetVolume takes a level in [0,1].
	SetVolume(float64)
	Ended() <-chan uint64
	Close() error
}

// ErrNoTrack is returned by Play when nothing has been loaded.
var ErrNoTrack = errors.New("no track loaded")

// Silent is a Player that accepts every call and never makes a sound or
// reaches the end of a track.
type Silent struct {
	ended chan uint64
}

// NewSilent returns a silent player.
func NewSilent() *Silent {
	return &Silent{ended: make(chan uint64)}
}

func (s *Silent) Load(Track, uint64) error { return nil }
func (s *Silent) Play(context.Context) error { return nil }
func (s *Silent) Pause() error { return nil }
func (s *Silent) SetVolume(float64) {}
func (s *Silent) Ended() <-chan uint64 { return s.ended }
func (s *Silent) Close() error { return nil }
