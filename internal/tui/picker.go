package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/cardstock/internal/util"
)

// pickerModal is a fuzzy jump-to-card list over the deck's titles.
type pickerModal struct {
	input    textinput.Model
	titles   []string
	filtered []int // deck indices, best match first
	cursor   int
	width    int
	height   int
	padX     int
	padY     int
	box      lipglossv2.Style
}

func newPickerModal(titles []string, termW, termH int) *pickerModal {
	m := &pickerModal{titles: titles, padX: 2, padY: 1}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "title"
	ti.Focus()
	m.input = ti
	m.refilter()
	m.resizeForTerm(termW, termH)
	return m
}

func (m *pickerModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := 48
	if w > termW-4 {
		w = max(30, termW-4)
	}
	h := m.visibleRows() + 6
	if h > termH-2 {
		h = max(8, termH-2)
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))

	innerW := w - 2 - m.padX*2
	m.input.Width = max(12, innerW-lipgloss.Width(m.input.Prompt))
}

func (m *pickerModal) visibleRows() int {
	n := len(m.filtered)
	if n > 8 {
		n = 8
	}
	return n
}

func (m *pickerModal) refilter() {
	m.filtered = util.ScoreIndices(m.input.Value(), m.titles, 0)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the deck index of the highlighted row, or -1.
func (m *pickerModal) selected() int {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return -1
	}
	return m.filtered[m.cursor]
}

func (m *pickerModal) update(msg tea.Msg) (*pickerModal, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		switch x.String() {
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *pickerModal) View() string {
	header := titleStyle.Render("Jump to card")
	help := lipgloss.NewStyle().Faint(true).Render("enter=jump • esc=cancel • ↑/↓=select")

	rows := make([]string, 0, m.visibleRows())
	start := 0
	if m.cursor >= 8 {
		start = m.cursor - 7
	}
	for i := start; i < len(m.filtered) && i < start+8; i++ {
		deckIdx := m.filtered[i]
		line := fmt.Sprintf("%2d  %s", deckIdx+1, m.titles[deckIdx])
		if i == m.cursor {
			line = labelStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, helpStyle.Render("  (no matches)"))
	}

	body := strings.Join(append(append([]string{header, "", m.input.View(), ""}, rows...), "", help), "\n")
	return m.box.Render(body)
}

func (m *pickerModal) Init() tea.Cmd                           { return nil }
func (m *pickerModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m.update(msg) }
