package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Placeholders substituted into a Command's argv.
const (
	FilePlaceholder   = "{file}"
	VolumePlaceholder = "{volume}"
)

// Command plays each track by running an external program, for example
//
//	mpv --no-video --really-quiet --volume={volume} {file}
//
// Pause and resume suspend and continue the process where the platform
// supports it. A process that exits with status 0 on its own reports the end
// of the track. Volume changes apply from the next start.
type Command struct {
	argv   []string
	logger *slog.Logger

	mu      sync.Mutex
	track   *Track
	gen     uint64
	proc    *exec.Cmd
	paused  bool
	stopped map[*exec.Cmd]bool
	volume  float64
	ended   chan uint64
}

// NewCommand returns a player that runs argv for every track. argv must
// contain FilePlaceholder in at least one element.
func NewCommand(argv []string, logger *slog.Logger) (*Command, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, fmt.Errorf("media command: empty argv")
	}
	hasFile := false
	for _, a := range argv {
		if strings.Contains(a, FilePlaceholder) {
			hasFile = true
			break
		}
	}
	if !hasFile {
		return nil, fmt.Errorf("media command: argv has no %s placeholder", FilePlaceholder)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Command{
		argv:    append([]string(nil), argv...),
		logger:  logger.With("component", "media"),
		stopped: make(map[*exec.Cmd]bool),
		volume:  0.75,
		ended:   make(chan uint64, 1),
	}, nil
}

// Load stops any running process and makes t the current track.
func (c *Command) Load(t Track, gen uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.track = &t
	c.gen = gen
	return nil
}

// Play resumes a suspended process or starts a new one.
func (c *Command) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.track == nil {
		return ErrNoTrack
	}
	if c.proc != nil {
		if !c.paused {
			return nil
		}
		if err := resume(c.proc.Process); err != nil {
			return fmt.Errorf("resume %s: %w", c.track.Title, err)
		}
		c.paused = false
		return nil
	}

	cmd := exec.Command(c.argv[0], c.args()...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.track.Title, err)
	}
	c.proc = cmd
	c.paused = false
	go c.wait(cmd, c.gen)
	return nil
}

// Pause suspends the running process. With nothing running it is a no-op.
func (c *Command) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.proc == nil || c.paused {
		return nil
	}
	if err := suspend(c.proc.Process); err != nil {
		if errors.Is(err, errors.ErrUnsupported) {
			// Without job control the only way to go quiet is to stop.
			c.stopLocked()
			return nil
		}
		return fmt.Errorf("pause: %w", err)
	}
	c.paused = true
	return nil
}

func (c *Command) SetVolume(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	c.mu.Lock()
	c.volume = math.Min(math.Max(v, 0), 1)
	c.mu.Unlock()
}

func (c *Command) Ended() <-chan uint64 { return c.ended }

// Close stops any running process.
func (c *Command) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	return nil
}

func (c *Command) args() []string {
	vol := strconv.Itoa(int(math.Round(c.volume * 100)))
	out := make([]string, 0, len(c.argv)-1)
	for _, a := range c.argv[1:] {
		a = strings.ReplaceAll(a, FilePlaceholder, c.track.File)
		a = strings.ReplaceAll(a, VolumePlaceholder, vol)
		out = append(out, a)
	}
	return out
}

func (c *Command) stopLocked() {
	if c.proc == nil {
		return
	}
	c.stopped[c.proc] = true
	if c.paused {
		_ = resume(c.proc.Process)
	}
	if err := c.proc.Process.Kill(); err != nil {
		c.logger.Debug("kill player process", "error", err)
	}
	c.proc = nil
	c.paused = false
}

func (c *Command) wait(cmd *exec.Cmd, gen uint64) {
	err := cmd.Wait()

	c.mu.Lock()
	killed := c.stopped[cmd]
	delete(c.stopped, cmd)
	if c.proc == cmd {
		c.proc = nil
		c.paused = false
	}
	c.mu.Unlock()

	if killed {
		return
	}
	if err != nil {
		c.logger.Warn("player process failed", "error", err)
		return
	}
	select {
	case c.ended <- gen:
	default:
	}
}
