package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/cardstock/pkg/models"
)

// UI chrome colors (editor frame, status bar, help text).
const (
	colAccent  = "#AB9DF2"
	colComment = "#727072"
	colBorder  = "240"
	colYellow  = "#FFD866"
	colRed     = "#FF6188"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colAccent))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colAccent))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colComment))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colYellow))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colRed))

	editorFrame = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colBorder))
)

// cardPalette is the fixed preview color set for one theme variant.
type cardPalette struct {
	face      lipgloss.Color // card background
	text      lipgloss.Color
	border    lipgloss.Color
	band      lipgloss.Color // title/tags band background
	tags      lipgloss.Color
	indicator lipgloss.Color
	shadow    lipgloss.Color
}

func cardPaletteFor(t models.Theme) cardPalette {
	if t == models.ThemeDark {
		return cardPalette{
			face:      lipgloss.Color("#2D2D30"),
			text:      lipgloss.Color("#FFFFFF"),
			border:    lipgloss.Color("#555555"),
			band:      lipgloss.Color("#3D3D40"),
			tags:      lipgloss.Color("#AAAAAA"),
			indicator: lipgloss.Color("#999999"),
			shadow:    lipgloss.Color("#1A1A1C"),
		}
	}
	return cardPalette{
		face:      lipgloss.Color("#FFFFFF"),
		text:      lipgloss.Color("#000000"),
		border:    lipgloss.Color("#CCCCCC"),
		band:      lipgloss.Color("#F0F0F0"),
		tags:      lipgloss.Color("#666666"),
		indicator: lipgloss.Color("#999999"),
		shadow:    lipgloss.Color("#AAAAAA"),
	}
}
