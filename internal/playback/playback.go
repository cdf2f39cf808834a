// Package playback is the music widget's state machine: which track is
// current, whether it is playing, and how starts that complete late are
// reconciled with the user's latest intent.
//
// Starting output is asynchronous. Play returns a StartRequest that the
// caller runs off the UI goroutine and reports back through Started. Every
// request carries a token; only the newest token may move the machine into
// Playing, and any newer Pause, Play, Next or Prev makes older tokens stale.
package playback

import (
	"context"
	"log/slog"

	"github.com/five82/memento/internal/media"
)

// Status is the coarse playback state.
type Status int

const (
	Stopped Status = iota
	Playing
	Paused
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// DefaultVolume is the initial volume percentage.
const DefaultVolume = 75

// StartRequest asks the player to begin output for the current track.
type StartRequest struct {
	Token  uint64
	Index  int
	Resume bool

	player media.Player
}

// Run starts the player. It may block and is safe to call from any goroutine.
func (r *StartRequest) Run(ctx context.Context) error {
	return r.player.Play(ctx)
}

// Machine tracks the playlist position and play state. It is owned by the UI
// update loop and is not safe for concurrent use; only StartRequest.Run may
// be called elsewhere.
type Machine struct {
	player media.Player
	tracks []media.Track
	logger *slog.Logger

	index   int
	status  Status
	playing bool
	volume  int

	token   uint64
	pending bool
	// gen tags the loaded track; end signals for older loads are dropped.
	gen uint64
	// resuming is set while a start issued by Next, Prev or TrackEnded to
	// continue playback across a track change is unresolved.
	resuming bool
}

// New returns a stopped machine positioned on the first track, which is
// loaded into the player immediately.
func New(player media.Player, tracks []media.Track, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Machine{
		player: player,
		tracks: append([]media.Track(nil), tracks...),
		logger: logger.With("component", "playback"),
		volume: DefaultVolume,
	}
	m.player.SetVolume(float64(m.volume) / 100)
	if len(m.tracks) > 0 {
		m.load()
	}
	return m
}

// Tracks returns the catalog size.
func (m *Machine) Tracks() int { return len(m.tracks) }

// Index returns the current track index.
func (m *Machine) Index() int { return m.index }

// Track returns the current track. ok is false for an empty catalog.
func (m *Machine) Track() (media.Track, bool) {
	if len(m.tracks) == 0 {
		return media.Track{}, false
	}
	return m.tracks[m.index], true
}

// Playing reports whether output has been confirmed started.
func (m *Machine) Playing() bool { return m.playing }

// Pending reports whether a start request is outstanding.
func (m *Machine) Pending() bool { return m.pending }

// Resuming reports whether an outstanding start continues playback across a
// track change.
func (m *Machine) Resuming() bool { return m.resuming }

// State returns the coarse status.
func (m *Machine) State() Status { return m.status }

// Volume returns the volume percentage.
func (m *Machine) Volume() int { return m.volume }

// Play issues a start request for the current track. It returns nil when the
// catalog is empty.
func (m *Machine) Play() *StartRequest {
	if len(m.tracks) == 0 {
		return nil
	}
	m.token++
	m.pending = true
	return &StartRequest{Token: m.token, Index: m.index, player: m.player}
}

// Pause stops output and invalidates any outstanding start.
func (m *Machine) Pause() {
	wasActive := m.playing || m.pending
	m.token++
	m.pending = false
	m.resuming = false
	m.playing = false
	if m.status == Playing {
		m.status = Paused
	}
	if !wasActive {
		return
	}
	if err := m.player.Pause(); err != nil {
		m.logger.Warn("pause failed", "error", err)
	}
}

// Toggle pauses when playing or starting, and starts otherwise.
func (m *Machine) Toggle() *StartRequest {
	if m.playing || m.pending {
		m.Pause()
		return nil
	}
	return m.Play()
}

// Next moves to the following track, wrapping at the end. Playback continues
// if it was playing before the move.
func (m *Machine) Next() *StartRequest {
	return m.step(1, m.playing)
}

// Prev moves to the preceding track, wrapping at the start.
func (m *Machine) Prev() *StartRequest {
	return m.step(-1, m.playing)
}

// Generation identifies the currently loaded track.
func (m *Machine) Generation() uint64 { return m.gen }

// TrackEnded handles the player reaching the end of the track loaded as gen.
// With more than one track it advances and keeps playing; a lone track stops.
// An end for a track that has since been replaced is ignored.
func (m *Machine) TrackEnded(gen uint64) *StartRequest {
	if gen != m.gen {
		m.logger.Debug("ignoring stale track end", "gen", gen, "latest", m.gen)
		return nil
	}
	switch len(m.tracks) {
	case 0:
		return nil
	case 1:
		m.token++
		m.pending = false
		m.resuming = false
		m.playing = false
		m.status = Stopped
		return nil
	default:
		return m.step(1, true)
	}
}

// Started reports the outcome of a start request. Stale outcomes never change
// the state; a stale success is paused again so the newest intent wins.
func (m *Machine) Started(token uint64, err error) {
	if token != m.token {
		if err == nil && !m.playing && !m.pending {
			m.logger.Debug("stale start succeeded, pausing", "token", token, "latest", m.token)
			if perr := m.player.Pause(); perr != nil {
				m.logger.Warn("pause after stale start failed", "error", perr)
			}
		} else {
			m.logger.Debug("ignoring stale start", "token", token, "latest", m.token)
		}
		return
	}

	m.pending = false
	m.resuming = false
	if err != nil {
		m.logger.Warn("play failed", "track", m.index, "error", err)
		m.playing = false
		return
	}
	m.playing = true
	m.status = Playing
}

// SetVolume clamps v to [0,100], applies it and returns the stored value.
func (m *Machine) SetVolume(v int) int {
	v = min(max(v, 0), 100)
	m.volume = v
	m.player.SetVolume(float64(v) / 100)
	return v
}

func (m *Machine) step(delta int, resume bool) *StartRequest {
	if len(m.tracks) == 0 {
		return nil
	}
	n := len(m.tracks)
	m.token++
	m.pending = false
	m.playing = false
	m.resuming = resume
	if m.status == Playing {
		m.status = Paused
	}
	m.index = ((m.index+delta)%n + n) % n
	m.load()

	if !resume {
		return nil
	}
	req := m.Play()
	req.Resume = true
	return req
}

func (m *Machine) load() {
	m.gen++
	if err := m.player.Load(m.tracks[m.index], m.gen); err != nil {
		m.logger.Warn("load failed", "track", m.tracks[m.index].Title, "error", err)
	}
}
