package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memento/internal/calendar"
	"github.com/five82/memento/internal/config"
	"github.com/five82/memento/internal/gallery"
	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/lock"
	"github.com/five82/memento/internal/media"
	"github.com/five82/memento/internal/persist"
	"github.com/five82/memento/internal/playback"
	"github.com/five82/memento/internal/prefs"
	"github.com/five82/memento/internal/route"
	pin "github.com/five82/memento/internal/secret"
	"github.com/five82/memento/internal/state"
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Config   config.Config
	Session  *state.Session
	Mirror   *persist.Mirror
	Music    *playback.Machine
	Player   media.Player
	Catalog  *gallery.Catalog
	Calendar *calendar.Calendar
	Logger   *slog.Logger

	// Secret is the PIN the lock screen accepts.
	Secret string

	ThemeName string
	PrefsPath string

	// Start is the first route shown. The zero value is the lock screen.
	Start route.Route

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	cfg       config.Config
	logger    *slog.Logger
	prefsPath string
	now       func() time.Time

	// Shared state that survives navigation
	session *state.Session
	mirror  *persist.Mirror
	music   *playback.Machine
	player  media.Player
	catalog *gallery.Catalog

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	nav     *navigator
	gate    *lock.Gate
	desk    *desktop
	float   *floating
	notes   *notesWidget
	cal     *calendar.Calendar
	menu    *menuBar
	viewer  *gallery.Viewer
	asset   *assetState
	letter  *letterView
	pointer *pointerState
	resize  *persist.Debouncer
	idle    *idleTimer
}

// navigator records route changes made by the lock gate, the menu bar and
// the desktop. The model applies enter effects after every update.
type navigator struct {
	current route.Route
	changed bool
}

// Navigate implements route.Navigator.
func (n *navigator) Navigate(to route.Route) {
	if n.current == to {
		return
	}
	n.current = to
	n.changed = true
}

// idleTimer tracks the last input for the desktop auto-lock.
type idleTimer struct {
	after time.Duration
	last  time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	session := opts.Session
	if session == nil {
		session = state.NewSession()
	}

	player := opts.Player
	if player == nil {
		player = media.NewSilent()
	}

	music := opts.Music
	if music == nil {
		music = playback.New(player, nil, logger)
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = gallery.DefaultCatalog()
	}

	cal := opts.Calendar
	if cal == nil {
		cal = calendar.New(now(), calendar.DefaultSpecialDates())
	}

	idle := opts.Config.Desktop.Inactivity
	if idle <= 0 {
		idle = DefaultInactivity
	}

	margin := opts.Config.Desktop.MarginRatio
	if margin <= 0 {
		margin = WidgetMargin
	}

	thumb := geometry.SizeOf(opts.Config.Desktop.ThumbWidth, opts.Config.Desktop.ThumbHeight)
	if thumb.W <= 0 || thumb.H <= 0 {
		thumb = geometry.SizeOf(12, 5)
	}

	nav := &navigator{current: opts.Start}
	secret := opts.Secret
	if secret == "" {
		secret = pin.DefaultPIN
	}

	m := Model{
		ctx:       ctx,
		cfg:       opts.Config,
		logger:    logger.With("component", "ui"),
		prefsPath: prefsPath,
		now:       now,
		session:   session,
		mirror:    opts.Mirror,
		music:     music,
		player:    player,
		catalog:   catalog,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		nav:       nav,
		gate:      lock.New(secret, opts.Config.Lock.ErrorMessage, nav),
		desk:      newDesktop(catalog, thumb, margin),
		float:     newFloating(margin),
		notes:     newNotesWidget(session.NoteText()),
		cal:       cal,
		menu:      &menuBar{clock: now()},
		viewer:    gallery.NewViewer(catalog.Photos()),
		asset:     &assetState{},
		letter:    newLetterView(),
		pointer:   &pointerState{},
		resize:    persist.NewDebouncer("resize", persist.DefaultQuiet),
		idle:      &idleTimer{after: idle, last: now()},
	}
	m.desk.bind(m.mirror)
	m.desk.sync(m.mirror)
	m.letter.setText(opts.Config.Letter.Text)

	session.OnVisibilityChange(func(id state.WidgetID, visible bool) {
		if visible {
			m.float.raise(id)
			return
		}
		if b := m.float.behavior(id); b != nil {
			m.pointer.tracker.Detach(b)
		}
		switch id {
		case state.Notes:
			m.notes.area.Blur()
		case state.Calendar:
			m.cal.CloseNote()
		}
	})
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		clockCmd(),
		idleCmd(),
		m.probeThumbnails(),
		waitEndedCmd(m.player.Ended()),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next, tea.Batch(cmd, next.settleRoute())
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.idle.last = m.now()
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.idle.last = m.now()
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		first := !m.ready
		m.ready = true
		m.float.clamp(m)
		m.letter.resize(m.width, m.height)
		if first {
			m.rescaleThumbnails()
			return m, nil
		}
		return m, m.resize.Trigger()

	case persist.DebounceMsg:
		if m.resize.Settled(msg) {
			m.rescaleThumbnails()
		}
		return m, nil

	case clockMsg:
		t := time.Time(msg)
		m.menu.clock = t
		m.cal.SetToday(t)
		return m, clockCmd()

	case idleMsg:
		if m.nav.current == route.Desktop && m.now().Sub(m.idle.last) >= m.idle.after {
			m.logger.Info("auto-lock after inactivity", "idle", m.idle.after)
			m.nav.Navigate(route.Lock)
		}
		return m, idleCmd()

	case startedMsg:
		m.music.Started(msg.token, msg.err)
		return m, nil

	case trackEndedMsg:
		req := m.music.TrackEnded(msg.gen)
		return m, tea.Batch(m.startCmd(req), waitEndedCmd(m.player.Ended()))

	case assetMsg:
		m.asset.apply(msg)
		return m, nil

	case thumbsMsg:
		m.desk.thumbs = msg
		return m, nil

	case letterOpenMsg:
		if m.desk.opening == msg.seq {
			m.desk.opening = 0
			m.nav.Navigate(route.Letter)
		}
		return m, nil

	case envelopeOpenMsg:
		m.letter.finishOpening()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderScreen()
}

// Route returns the active route.
func (m Model) Route() route.Route {
	return m.nav.current
}

// settleRoute applies enter effects once per update after a navigation.
func (m Model) settleRoute() tea.Cmd {
	if !m.nav.changed {
		return nil
	}
	m.nav.changed = false
	m.pointer.reset()
	m.menu.volumeOpen = false
	m.logger.Debug("navigate", "route", m.nav.current)

	switch m.nav.current {
	case route.Lock:
		m.gate.Cancel()
		m.viewer.Close()
		m.notes.area.Blur()
	case route.Desktop:
		m.idle.last = m.now()
	case route.Letter:
		m.viewer.Close()
		m.letter.reset()
		m.letter.resize(m.width, m.height)
	}
	return nil
}

func (m Model) viewport() geometry.Size {
	return geometry.SizeOf(m.width, m.height)
}

// rescaleThumbnails keeps saved thumbnail positions in the same relative
// place after the viewport changes.
func (m Model) rescaleThumbnails() {
	if m.mirror == nil {
		return
	}
	m.mirror.Rescale(m.viewport())
	m.desk.bind(m.mirror)
	m.desk.sync(m.mirror)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Volume: m.music.Volume()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Messages

type clockMsg time.Time

type idleMsg time.Time

type startedMsg struct {
	token uint64
	err   error
}

type trackEndedMsg struct{ gen uint64 }

type letterOpenMsg struct{ seq int }

type envelopeOpenMsg struct{}

// Commands

func clockCmd() tea.Cmd {
	return tea.Tick(ClockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func idleCmd() tea.Cmd {
	return tea.Tick(IdleInterval, func(t time.Time) tea.Msg {
		return idleMsg(t)
	})
}

// startCmd runs a playback start request off the update loop and reports
// the outcome with its token.
func (m Model) startCmd(req *playback.StartRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return startedMsg{token: req.Token, err: req.Run(ctx)}
	}
}

// waitEndedCmd blocks until the player reports the end of a track.
func waitEndedCmd(ended <-chan uint64) tea.Cmd {
	if ended == nil {
		return nil
	}
	return func() tea.Msg {
		gen, ok := <-ended
		if !ok {
			return nil
		}
		return trackEndedMsg{gen: gen}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
