package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barFill renders runs of text on a solid background. Styled segments end
// with an ANSI reset, so bare spaces between them would show the terminal
// background; barFill styles those gaps too.
type barFill struct {
	bg    lipgloss.Color
	space string
}

func newBarFill(color string) barFill {
	bg := lipgloss.Color(color)
	return barFill{bg: bg, space: lipgloss.NewStyle().Background(bg).Render(" ")}
}

// Render applies style on the fill background, including the spaces
// inside text.
func (b barFill) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return style.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Spaces returns n filled spaces.
func (b barFill) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.space, n)
}

// Line clips content to width and fills what is left of the row.
func (b barFill) Line(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).MaxWidth(width).Render(pad(content, width))
}
