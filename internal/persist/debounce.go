package persist

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultQuiet is the quiet period used for resize handling.
const DefaultQuiet = 100 * time.Millisecond

// DebounceMsg is delivered when a quiet period elapses. Only the message
// carrying the latest sequence should be acted on.
type DebounceMsg struct {
	Tag string
	Seq uint64
}

// Debouncer coalesces bursts of events into one trailing message.
type Debouncer struct {
	Tag   string
	Quiet time.Duration
	seq   uint64
}

// NewDebouncer returns a debouncer with the given tag and quiet period.
// A non-positive quiet period uses DefaultQuiet.
func NewDebouncer(tag string, quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{Tag: tag, Quiet: quiet}
}

// Trigger starts a new quiet period, superseding any pending one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	msg := DebounceMsg{Tag: d.Tag, Seq: d.seq}
	return tea.Tick(d.Quiet, func(time.Time) tea.Msg { return msg })
}

// Settled reports whether msg is this debouncer's latest trigger.
func (d *Debouncer) Settled(msg DebounceMsg) bool {
	return msg.Tag == d.Tag && msg.Seq == d.seq
}
