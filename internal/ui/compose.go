package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lg2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/five82/memento/internal/geometry"
	"github.com/five82/memento/internal/route"
)

// Stacking order of the screen layers. Thumbnails and widgets stack
// upward from their base; the chrome and overlays sit above all of them.
const (
	zBackground = iota
	zRoute
	zWidgets
)

// renderScreen stacks the route content, floating widgets and overlays on
// one canvas.
func (m Model) renderScreen() string {
	layers := []*lg2.Layer{m.backgroundLayer()}

	switch m.nav.current {
	case route.Lock:
		pn := m.lockPanel()
		layers = append(layers, place(pn, m.lockRect(pn), zRoute))
	case route.Desktop:
		for i, slot := range m.desk.slots(m.session) {
			r := m.desk.rect(slot, m.viewport())
			x, y := r.Origin.Cell()
			layers = append(layers, lg2.NewLayer(m.renderThumbnail(slot)).X(x).Y(y).Z(zRoute+i))
		}
	case route.Letter:
		pn := m.letterPanel()
		layers = append(layers, place(pn, m.letterRect(pn), zRoute))
	}

	// Widgets sit above every thumbnail.
	base := zWidgets + len(m.catalog.Items())
	for i, id := range m.visibleWidgets() {
		pn := m.widgetPanel(id)
		layers = append(layers, place(pn, m.widgetRect(id, pn), base+i))
	}
	chrome := base + len(m.float.order)

	if m.nav.current != route.Lock {
		menu, _ := m.menuPanel()
		layers = append(layers, lg2.NewLayer(menu.view).X(0).Y(0).Z(chrome))
		dock := m.dockPanel()
		layers = append(layers, place(dock, m.dockRect(dock), chrome))
	}

	if m.menu.volumeOpen {
		pn := m.volumePanel()
		layers = append(layers, place(pn, m.volumeRect(pn), chrome+1))
	}

	if m.plansVisible() {
		pn := m.plansPanel()
		layers = append(layers, place(pn, m.plansRect(pn), chrome+2))
	}

	if m.viewer.IsOpen() {
		z := chrome + 3
		layers = append(layers, m.backdropLayer(z))
		pn := m.viewerPanel()
		layers = append(layers, place(pn, m.viewerRect(pn), z+1))
	}

	return lg2.NewCanvas(layers...).Render()
}

func place(p panel, r geometry.Rect, z int) *lg2.Layer {
	x, y := r.Origin.Cell()
	return lg2.NewLayer(p.view).X(x).Y(y).Z(z)
}

// backgroundLayer fills the screen so the canvas always spans the viewport.
func (m Model) backgroundLayer() *lg2.Layer {
	fill := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Height(m.height).
		Render("")
	return lg2.NewLayer(fill).X(0).Y(0).Z(zBackground)
}

// backdropLayer dims everything behind a modal.
func (m Model) backdropLayer(z int) *lg2.Layer {
	row := strings.Repeat("░", m.width)
	rows := make([]string, m.height)
	for i := range rows {
		rows[i] = row
	}
	shade := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.BorderMuted)).
		Background(lipgloss.Color(m.theme.Background)).
		Render(strings.Join(rows, "\n"))
	return lg2.NewLayer(shade).X(0).Y(0).Z(z)
}
