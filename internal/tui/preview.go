package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

// cardBox fits a card rectangle into the available cell area at the
// given physical aspect ratio (height/width). Terminal cells are about
// twice as tall as wide, so one physical width unit spans two columns.
// The card takes at most 90% of each dimension.
func cardBox(availW, availH int, ratio float64) (w, h int) {
	maxW := availW * 9 / 10
	maxH := availH * 9 / 10

	w = maxW
	h = int(float64(w)*ratio/2 + 0.5)
	if h > maxH {
		h = maxH
		w = int(float64(h)*2/ratio + 0.5)
	}
	if w > maxW {
		w = maxW
	}
	return w, h
}

// renderPreview draws one card side into the given area: a centered
// bordered rectangle at the configured aspect ratio with a drop
// shadow, a title band, the transformed body, and a tags band.
// It is recomputed from the live editor text on every pass.
func renderPreview(raw string, side models.Side, st config.Settings, availW, availH int) string {
	w, h := cardBox(availW, availH, st.Orientation.AspectRatio(st.Size))
	if w < 8 || h < 4 {
		return helpStyle.Render("(window too small for preview)")
	}

	pal := cardPaletteFor(st.Theme)
	content := transform.Extract(raw)
	body := transform.Plain(content.Body)

	inner := w - 2 // inside the border
	face := lipgloss.NewStyle().
		Background(pal.face).
		Foreground(pal.text).
		Width(inner)
	band := face.
		Background(pal.band).
		Align(lipgloss.Center).
		Bold(true)

	var rows []string
	if st.ShowSideIndicator {
		rows = append(rows, face.Align(lipgloss.Right).Foreground(pal.indicator).Render(side.Indicator()))
	}
	hasTitle := content.Title != models.DefaultTitle
	if hasTitle {
		rows = append(rows, band.Render(content.Title))
	}

	hasTags := content.Tags != ""
	bodyBudget := h - 2 - len(rows)
	if hasTags {
		bodyBudget--
	}

	if body != "" && bodyBudget > 0 {
		bodyLines := strings.Split(face.Padding(0, 1).Render(body), "\n")
		if len(bodyLines) > bodyBudget {
			bodyLines = bodyLines[:bodyBudget]
		}
		rows = append(rows, bodyLines...)
	}

	// Fill the card face down to the tags band.
	fill := h - 2 - len(rows)
	if hasTags {
		fill--
	}
	for i := 0; i < fill; i++ {
		rows = append(rows, face.Render(""))
	}
	if hasTags {
		rows = append(rows, band.Bold(false).Foreground(pal.tags).Render(content.Tags))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(pal.border).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(availW, availH, lipgloss.Center, lipgloss.Center, addShadow(card, pal))
}

// addShadow offsets a shadow column and row behind the card.
func addShadow(card string, pal cardPalette) string {
	sh := lipgloss.NewStyle().Foreground(pal.shadow)
	lines := strings.Split(card, "\n")
	width := lipgloss.Width(lines[0])

	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		if i == 0 {
			out = append(out, line+" ")
			continue
		}
		out = append(out, line+sh.Render("░"))
	}
	out = append(out, " "+sh.Render(strings.Repeat("░", width)))
	return strings.Join(out, "\n")
}
