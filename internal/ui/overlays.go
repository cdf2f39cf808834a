package ui

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/five82/memento/internal/gallery"
	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/state"
)

// Plans

func (m Model) plansVisible() bool {
	return m.session.CanAccessPlans() && m.session.Visible(state.Plans)
}

func (m Model) plansPanel() panel {
	st := m.windowStyles()
	var l lines
	titleRow(&l, st, "PLANS", plansWidth, func(m Model) tea.Cmd {
		m.session.SetVisible(state.Plans, false)
		return nil
	})
	l.newline()
	l.block(st.Text.Render(wordwrap.String(m.cfg.Plans.Text, plansWidth)))
	return window(m.theme.Styles().FocusWindow, plansWidth, l.panel())
}

func (m Model) plansRect(p panel) geometry.Rect {
	x, y := centered(m.viewport(), p.size())
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(y)}, Size: p.size()}
}

// Image viewer

// assetState is the result of probing the file behind the open image.
type assetState struct {
	id      int
	pending bool
	asset   gallery.Asset
	err     error
}

type assetMsg struct {
	id    int
	asset gallery.Asset
	err   error
}

func (a *assetState) apply(msg assetMsg) {
	if msg.id != a.id {
		return
	}
	a.pending = false
	a.asset, a.err = msg.asset, msg.err
}

// lookupAsset probes the image file for it off the update loop.
func (m Model) lookupAsset(it gallery.Item) tea.Cmd {
	*m.asset = assetState{id: it.ID, pending: true}
	root := m.cfg.Desktop.Assets
	return func() tea.Msg {
		a, err := gallery.Lookup(root, it)
		return assetMsg{id: it.ID, asset: a, err: err}
	}
}

// stepViewer moves to a neighbouring photo and probes its file.
func (m Model) stepViewer(delta int) tea.Cmd {
	var moved bool
	if delta > 0 {
		moved = m.viewer.Next()
	} else {
		moved = m.viewer.Prev()
	}
	if !moved {
		return nil
	}
	it, _ := m.viewer.Current()
	return m.lookupAsset(it)
}

func (m Model) viewerPanel() panel {
	st := m.windowStyles()
	it, _ := m.viewer.Current()

	inner := min(max(m.width-8, 20), 64)
	var l lines
	titleRow(&l, st, displayName(it), inner, func(m Model) tea.Cmd {
		m.viewer.Close()
		return nil
	})

	// The frame stands in for the picture and scales with the zoom.
	zoom := m.viewer.Zoom()
	baseW, baseH := float64(inner)/2, 6.0
	fw := int(math.Round(baseW * zoom))
	fh := int(math.Round(baseH * zoom))
	fw = min(max(fw, 8), inner-2)
	fh = min(max(fh, 2), max(m.height-10, 2))

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(fw).
		Height(fh).
		Align(lipgloss.Center, lipgloss.Center).
		Render(m.assetCaption(fw))
	l.block(lipgloss.PlaceHorizontal(inner, lipgloss.Center, frame))

	var c lines
	if m.viewer.Navigable() {
		c.button(st.Button.Render(" ‹ "), func(m Model) tea.Cmd { return m.stepViewer(-1) })
		c.text("   ")
	}
	zoomOut := st.Button
	if !m.viewer.CanZoomOut() {
		zoomOut = st.FaintText
	}
	zoomIn := st.Button
	if !m.viewer.CanZoomIn() {
		zoomIn = st.FaintText
	}
	c.button(zoomOut.Render(" − "), func(m Model) tea.Cmd {
		m.viewer.ZoomOut()
		return nil
	})
	c.text(st.Text.Render(fmt.Sprintf(" %3d%% ", m.viewer.Percent())))
	c.button(zoomIn.Render(" + "), func(m Model) tea.Cmd {
		m.viewer.ZoomIn()
		return nil
	})
	if m.viewer.Navigable() {
		c.text("   ")
		c.button(st.Button.Render(" › "), func(m Model) tea.Cmd { return m.stepViewer(1) })
	}
	controls := c.panel()

	l.newline()
	offset := (inner - lipgloss.Width(controls.view)) / 2
	row := len(l.rows)
	l.text(strings.Repeat(" ", max(offset, 0)) + controls.view).newline()
	for _, r := range controls.regions {
		r.rect.Origin = r.rect.Origin.Add(geometry.Point{X: float64(max(offset, 0)), Y: float64(row)})
		l.regions = append(l.regions, r)
	}
	return window(m.theme.Styles().FocusWindow, inner, l.panel())
}

func (m Model) assetCaption(width int) string {
	st := m.windowStyles()
	it, _ := m.viewer.Current()
	switch {
	case m.asset.id != it.ID || m.asset.pending:
		return st.FaintText.Render("loading…")
	case errors.Is(m.asset.err, gallery.ErrNotFound):
		dir := filepath.Join(m.cfg.Desktop.Assets, it.Folder)
		msg := fmt.Sprintf("Image not found. Add %s to %s", it.Stem(), dir)
		return st.MutedText.Render(wordwrap.String(msg, width))
	case m.asset.err != nil:
		return st.DangerText.Render(wordwrap.String(m.asset.err.Error(), width))
	}
	a := m.asset.asset
	if a.Width == 0 || a.Height == 0 {
		return st.Text.Render(filepath.Base(a.Path))
	}
	return st.Text.Render(fmt.Sprintf("%d×%d\n%s", a.Width, a.Height, filepath.Base(a.Path)))
}

func (m Model) viewerRect(p panel) geometry.Rect {
	x, y := centered(m.viewport(), p.size())
	return geometry.Rect{Origin: geometry.Point{X: float64(x), Y: float64(y)}, Size: p.size()}
}
