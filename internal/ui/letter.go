package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/route"
	"github.com/five82/memento/internal/state"
)

// letterView is the letter route: an envelope that opens into a two-sided
// card with a question on the back. It starts over on every visit.
type letterView struct {
	opening bool
	opened  bool
	flipped bool
	saidYes bool
	saidNo  bool
	// offer is the picked offer on the "no" card, -1 for none.
	offer int

	body viewport.Model
	text string
}

func newLetterView() *letterView {
	v := &letterView{offer: -1, body: viewport.New(letterWidth, 8)}
	return v
}

// reset puts the envelope back, keeping the loaded text.
func (v *letterView) reset() {
	body := v.body
	text := v.text
	*v = letterView{offer: -1, body: body, text: text}
	v.body.GotoTop()
}

func (v *letterView) setText(text string) {
	v.text = text
	v.body.SetContent(wordwrap.String(text, letterWidth))
}

// resize fits the scrollable back of the card between the menu bar and dock.
func (v *letterView) resize(width, height int) {
	h := height - MenuBarHeight - DockHeight - 12
	v.body.Width = letterWidth
	v.body.Height = min(max(h, 3), 14)
}

// open starts the envelope animation. It reports false if the envelope is
// already open or opening.
func (v *letterView) open() bool {
	if v.opened || v.opening {
		return false
	}
	v.opening = true
	return true
}

func (v *letterView) finishOpening() {
	if !v.opening {
		return
	}
	v.opening = false
	v.opened = true
}

func (v *letterView) answering() bool {
	return !v.saidYes && !v.saidNo
}

// flip turns the card over.
func (v *letterView) flip() {
	if v.opened && v.answering() {
		v.flipped = !v.flipped
	}
}

// answerYes unlocks the plans widget for the rest of the session.
func (v *letterView) answerYes(s *state.Session) {
	if !v.flipped || !v.answering() {
		return
	}
	v.saidYes = true
	s.SetCanAccessPlans(true)
}

func (v *letterView) answerNo() {
	if !v.flipped || !v.answering() {
		return
	}
	v.saidNo = true
	v.offer = -1
}

// pickOffer toggles one of the counter offers on the "no" card.
func (v *letterView) pickOffer(i int) {
	if !v.saidNo {
		return
	}
	if v.offer == i {
		v.offer = -1
		return
	}
	v.offer = i
}

// thinkAgain returns from the "no" card to the question.
func (v *letterView) thinkAgain() {
	if !v.saidNo {
		return
	}
	v.saidNo = false
	v.offer = -1
}

func envelopeCmd() tea.Cmd {
	return tea.Tick(EnvelopeOpenDelay, func(time.Time) tea.Msg {
		return envelopeOpenMsg{}
	})
}

// handleLetterKey applies letter keys. It reports whether the key was used.
func (m Model) handleLetterKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	v := m.letter
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.nav.Navigate(route.Desktop)
		return nil, true
	case key.Matches(msg, m.keys.Confirm):
		if !v.opened {
			if v.open() {
				return envelopeCmd(), true
			}
			return nil, true
		}
		v.flip()
		return nil, true
	case key.Matches(msg, m.keys.Yes):
		v.answerYes(m.session)
		return nil, true
	case key.Matches(msg, m.keys.No):
		v.answerNo()
		return nil, true
	case key.Matches(msg, m.keys.ThinkAgain) && v.saidNo:
		v.thinkAgain()
		return nil, true
	case key.Matches(msg, m.keys.Offer) && v.saidNo:
		v.pickOffer(int(msg.String()[0] - '1'))
		return nil, true
	}
	if v.flipped && v.answering() {
		switch msg.String() {
		case "up", "down", "pgup", "pgdown", "k", "j":
			var cmd tea.Cmd
			v.body, cmd = v.body.Update(msg)
			return cmd, true
		}
	}
	return nil, false
}

func (m Model) letterPanel() panel {
	st := m.windowStyles()
	v := m.letter
	cfg := m.cfg.Letter
	var l lines
	titleRow(&l, st, "LETTER", letterWidth, func(m Model) tea.Cmd {
		m.nav.Navigate(route.Desktop)
		return nil
	})
	l.newline()

	switch {
	case v.saidYes:
		l.text(st.HeartText.Render(center("♥  ♥  ♥", letterWidth))).newline()
		l.newline()
		l.text(st.Text.Bold(true).Render(center("yay!", letterWidth))).newline()
		l.text(st.MutedText.Render(center("Plans are unlocked. Find Plan in the dock.", letterWidth))).newline()

	case v.saidNo:
		l.text(st.Text.Render(center("what if I offered…", letterWidth))).newline()
		l.newline()
		offer := ""
		if v.offer >= 0 && v.offer < len(cfg.Offers) {
			offer = cfg.Offers[v.offer]
		}
		l.text(st.HeartText.Render(center(offer, letterWidth))).newline()
		l.newline()
		labels := []string{" this ", " this ", " and this "}
		row := 0
		for _, lb := range labels {
			row += len(lb) + 2
		}
		l.text(strings.Repeat(" ", max((letterWidth-row)/2, 0)))
		for i, lb := range labels {
			style := st.Button
			if v.offer == i {
				style = st.Selected
			}
			l.button(style.Render(lb), func(m Model) tea.Cmd {
				m.letter.pickOffer(i)
				return nil
			})
			l.text("  ")
		}
		l.newline().newline()
		again := " okay, i'll think about it again "
		l.text(strings.Repeat(" ", max((letterWidth-len(again))/2, 0)))
		l.button(st.Button.Render(again), func(m Model) tea.Cmd {
			m.letter.thinkAgain()
			return nil
		})
		l.newline()

	case !v.opened:
		art := envelopeArt
		if v.opening {
			art = envelopeOpenArt
		}
		rows := strings.Count(art, "\n") + 1
		l.area(letterWidth, rows+2, func(m Model) tea.Cmd {
			if m.letter.open() {
				return envelopeCmd()
			}
			return nil
		})
		for _, row := range strings.Split(art, "\n") {
			l.text(st.HeartText.Render(center(row, letterWidth))).newline()
		}
		l.newline()
		hint := "click to open"
		if v.opening {
			hint = "opening…"
		}
		l.text(st.FaintText.Render(center(hint, letterWidth))).newline()

	case !v.flipped:
		card := []string{"", cfg.Front, "", ""}
		l.area(letterWidth, len(card)+1, func(m Model) tea.Cmd {
			m.letter.flip()
			return nil
		})
		for _, row := range card {
			l.text(st.Text.Bold(true).Render(center(row, letterWidth))).newline()
		}
		l.text(st.FaintText.Render(center("click the card to turn it over", letterWidth))).newline()

	default:
		l.area(letterWidth, v.body.Height, func(m Model) tea.Cmd {
			m.letter.flip()
			return nil
		})
		l.block(st.Text.Render(v.body.View()))
		l.newline()
		l.text(st.Text.Bold(true).Render(center(cfg.Question, letterWidth))).newline()
		l.newline()
		yes, no := " "+cfg.Yes+" ", " "+cfg.No+" "
		l.text(strings.Repeat(" ", max((letterWidth-len(yes)-len(no)-4)/2, 0)))
		l.button(st.Selected.Render(yes), func(m Model) tea.Cmd {
			m.letter.answerYes(m.session)
			return nil
		})
		l.text("    ")
		l.button(st.Button.Render(no), func(m Model) tea.Cmd {
			m.letter.answerNo()
			return nil
		})
		l.newline()
	}
	return window(m.theme.Styles().Window, letterWidth, l.panel())
}

func (m Model) letterRect(p panel) geometry.Rect {
	size := p.size()
	x, _ := centered(m.viewport(), size)
	avail := float64(m.height - MenuBarHeight - DockHeight)
	y := MenuBarHeight + int((avail-size.H)/2)
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(max(y, MenuBarHeight))}, Size: size}
}

const envelopeArt = `┌────────────────────────┐
│╲                      ╱│
│  ╲                  ╱  │
│    ╲      ♥       ╱    │
│      ╲          ╱      │
│        ╲──────╱        │
└────────────────────────┘`

const envelopeOpenArt = `        ╱╲──────╱╲
      ╱            ╲
┌───╱────────────────╲───┐
│                        │
│           ♥            │
│                        │
└────────────────────────┘`
