package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
)

// renderOverlay dims the base view and floats a modal box centered on
// top of it.
func (m model) renderOverlay(base, fg string, overlayW, overlayH int) string {
	termW, termH := m.width, m.height
	if termW <= 0 {
		termW = 80
	}
	if termH <= 0 {
		termH = 24
	}

	x := max(0, (termW-overlayW)/2)
	y := max(0, (termH-overlayH)/2)

	dimmed := lipgloss.NewStyle().Faint(true).Render(base)

	back := lipgloss.NewLayer(dimmed).
		Width(termW).
		Height(termH)
	front := lipgloss.NewLayer(fg).
		Width(overlayW).
		Height(overlayH).
		X(x).
		Y(y)

	return lipgloss.NewCanvas(back, front).Render()
}
