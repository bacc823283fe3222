package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

// exportKind selects the export pipeline behind the path prompt.
type exportKind int

const (
	exportPDF exportKind = iota
	exportMarkdown
)

func (k exportKind) String() string {
	if k == exportMarkdown {
		return "markdown"
	}
	return "pdf"
}

func (k exportKind) extension() string {
	if k == exportMarkdown {
		return ".md"
	}
	return ".pdf"
}

// exportModal prompts for a destination path. The suggested name is
// derived from the card title.
type exportModal struct {
	kind   exportKind
	path   textinput.Model
	width  int
	height int
	padX   int
	padY   int
	box    lipglossv2.Style
}

func newExportModal(kind exportKind, suggested string, termW, termH int) *exportModal {
	m := &exportModal{kind: kind, padX: 2, padY: 1}
	ti := textinput.New()
	ti.Prompt = "path: "
	ti.SetValue(suggested)
	ti.CursorEnd()
	ti.Focus()
	m.path = ti
	m.resizeForTerm(termW, termH)
	return m
}

// suggestedName turns a card title into a safe file name.
func suggestedName(title string, kind exportKind) string {
	name := strings.TrimSpace(strings.ToLower(title))
	name = strings.ReplaceAll(name, " ", "-")
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "card" + kind.extension()
	}
	return b.String() + kind.extension()
}

func (m *exportModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := 56
	if w > termW-4 {
		w = max(32, termW-4)
	}
	h := 7
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))

	innerW := w - 2 - m.padX*2
	m.path.Width = max(12, innerW-lipgloss.Width(m.path.Prompt))
}

func (m *exportModal) value() string {
	return strings.TrimSpace(m.path.Value())
}

func (m *exportModal) update(msg tea.Msg) (*exportModal, tea.Cmd) {
	if x, ok := msg.(tea.WindowSizeMsg); ok {
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *exportModal) View() string {
	header := titleStyle.Render("Export " + m.kind.String())
	help := lipgloss.NewStyle().Faint(true).Render("enter=export • esc=cancel")
	body := strings.Join([]string{header, "", m.path.View(), "", help}, "\n")
	return m.box.Render(body)
}

func (m *exportModal) Init() tea.Cmd                           { return nil }
func (m *exportModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m.update(msg) }
