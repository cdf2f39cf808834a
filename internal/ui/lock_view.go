package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memento/internal/geometry"
)

const lockWidth = 30

// keypad rows; the blank cell has no button.
var keypad = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{"", "0", "⌫"},
}

// lockPanel is the clock, or the PIN keypad once activated.
func (m Model) lockPanel() panel {
	st := m.theme.Styles()
	now := m.menu.clock
	var l lines

	if !m.gate.Active() {
		l.newline()
		l.text(st.Text.Bold(true).Render(center(now.Format("3:04 PM"), lockWidth))).newline()
		l.text(st.MutedText.Render(center(now.Format("Monday, January 2"), lockWidth))).newline()
		l.newline().newline()
		l.text(st.FaintText.Render(center("click or press enter to unlock", lockWidth))).newline()
		return l.panel()
	}

	l.text(st.HeartText.Render(center("( ♥ )", lockWidth))).newline()
	name := m.cfg.Lock.Name
	if name == "" {
		name = "you"
	}
	l.text(st.Text.Bold(true).Render(center(name, lockWidth))).newline()
	l.newline()

	dots := make([]string, 0, m.gate.PINLength())
	for i := 0; i < m.gate.PINLength(); i++ {
		if i < m.gate.Entered() {
			dots = append(dots, "●")
		} else {
			dots = append(dots, "○")
		}
	}
	l.text(st.AccentText.Render(center(strings.Join(dots, " "), lockWidth))).newline()
	if msg := m.gate.Error(); msg != "" {
		l.text(st.DangerText.Render(center(msg, lockWidth))).newline()
	} else {
		l.text(st.FaintText.Render(center(truncate(m.cfg.Lock.Hint, lockWidth), lockWidth))).newline()
	}
	l.newline()

	const cell = 5
	pad := (lockWidth - 3*cell - 4) / 2
	indent := strings.Repeat(" ", pad)
	// Presses on the keypad between keys land here and do nothing.
	l.regions = append(l.regions, region{
		rect: geometry.RectOf(pad, len(l.rows), 3*cell+4, 2*len(keypad)-1),
		act:  func(Model) tea.Cmd { return nil },
	})
	for _, row := range keypad {
		l.text(indent)
		for i, k := range row {
			if i > 0 {
				l.text("  ")
			}
			if k == "" {
				l.text(strings.Repeat(" ", cell))
				continue
			}
			label := st.Button.Render(center(k, cell))
			if k == "⌫" {
				l.button(label, func(m Model) tea.Cmd {
					m.gate.Backspace()
					return nil
				})
				continue
			}
			r := rune(k[0])
			l.button(label, func(m Model) tea.Cmd {
				m.gate.Digit(r)
				return nil
			})
		}
		l.newline().newline()
	}
	return l.panel()
}

func (m Model) lockRect(p panel) geometry.Rect {
	x, y := centered(m.viewport(), p.size())
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(y)}, Size: p.size()}
}

// pressLock routes a press on the lock screen. While the keypad shows,
// presses on the keypad go to its keys and any other press returns to the
// clock. Otherwise the press shows the keypad.
func (m Model) pressLock(p geometry.Point) tea.Cmd {
	if m.gate.Active() {
		pn := m.lockPanel()
		r := m.lockRect(pn)
		if reg, ok := pn.at(p.Sub(r.Origin)); ok && r.Contains(p) {
			return reg.act(m)
		}
	}
	m.gate.Activate()
	return nil
}
