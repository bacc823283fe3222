package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/pkg/models"
)

// settingsModal is a foreground modal editing the card settings. The
// enum rows cycle with left/right; the font sizes are free inputs.
type settingsModal struct {
	size        models.CardSize
	orientation models.Orientation
	theme       models.Theme
	indicator   bool
	contentFont textinput.Model
	titleFont   textinput.Model
	tagsFont    textinput.Model
	width       int
	height      int
	padX        int
	padY        int
	box         lipglossv2.Style
	focus       int
	err         string
}

const settingsFieldCount = 7

func newSettingsModal(s config.Settings, termW, termH int) *settingsModal {
	m := &settingsModal{
		size:        s.Size,
		orientation: s.Orientation,
		theme:       s.Theme,
		indicator:   s.ShowSideIndicator,
		padX:        2,
		padY:        1,
	}
	m.contentFont = newSizeInput(s.ContentFontSize)
	m.titleFont = newSizeInput(s.TitleFontSize)
	m.tagsFont = newSizeInput(s.TagsFontSize)
	m.setFocus(0)
	m.resizeForTerm(termW, termH)
	return m
}

func newSizeInput(value int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.Width = 4
	ti.SetValue(strconv.Itoa(value))
	return ti
}

func (m *settingsModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := 44
	if w > termW-4 {
		w = max(30, termW-4)
	}
	h := 15
	if h > termH-2 {
		h = max(11, termH-2)
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
}

func (m *settingsModal) setFocus(idx int) {
	m.focus = idx
	inputs := []*textinput.Model{&m.contentFont, &m.titleFont, &m.tagsFont}
	for i, in := range inputs {
		if i+4 == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// cycle advances the focused enum row. dir is +1 or -1.
func (m *settingsModal) cycle(dir int) {
	switch m.focus {
	case 0:
		sizes := []models.CardSize{models.Size3x5, models.Size4x6, models.Size5x7}
		for i, s := range sizes {
			if s == m.size {
				m.size = sizes[(i+dir+len(sizes))%len(sizes)]
				break
			}
		}
	case 1:
		m.orientation = m.orientation.Toggled()
	case 2:
		if m.theme == models.ThemeLight {
			m.theme = models.ThemeDark
		} else {
			m.theme = models.ThemeLight
		}
	case 3:
		m.indicator = !m.indicator
	}
}

// settings parses the modal state back into Settings. Font sizes must
// be positive integers.
func (m *settingsModal) settings() (config.Settings, error) {
	content, err := parseFontSize("content font size", m.contentFont.Value())
	if err != nil {
		return config.Settings{}, err
	}
	title, err := parseFontSize("title font size", m.titleFont.Value())
	if err != nil {
		return config.Settings{}, err
	}
	tags, err := parseFontSize("tags font size", m.tagsFont.Value())
	if err != nil {
		return config.Settings{}, err
	}
	return config.Settings{
		ContentFontSize:   content,
		TitleFontSize:     title,
		TagsFontSize:      tags,
		Theme:             m.theme,
		Orientation:       m.orientation,
		Size:              m.size,
		ShowSideIndicator: m.indicator,
	}, nil
}

func parseFontSize(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive number", name)
	}
	return n, nil
}

func (m *settingsModal) update(msg tea.Msg) (*settingsModal, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeForTerm(x.Width, x.Height)
		return m, nil
	case tea.KeyMsg:
		m.err = ""
		switch x.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % settingsFieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + settingsFieldCount - 1) % settingsFieldCount)
			return m, nil
		case "left":
			if m.focus < 4 {
				m.cycle(-1)
				return m, nil
			}
		case "right":
			if m.focus < 4 {
				m.cycle(1)
				return m, nil
			}
		case " ":
			if m.focus < 4 {
				m.cycle(1)
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	switch m.focus {
	case 4:
		m.contentFont, cmd = m.contentFont.Update(msg)
	case 5:
		m.titleFont, cmd = m.titleFont.Update(msg)
	case 6:
		m.tagsFont, cmd = m.tagsFont.Update(msg)
	}
	return m, cmd
}

func (m *settingsModal) View() string {
	header := titleStyle.Render("Card Settings")
	help := lipgloss.NewStyle().Faint(true).Render("enter=save • esc=cancel • tab=next • ←/→=change")

	indicator := "off"
	if m.indicator {
		indicator = "on"
	}
	rows := []string{
		m.row(0, "card size", m.size.String()),
		m.row(1, "orientation", m.orientation.String()),
		m.row(2, "theme", m.theme.String()),
		m.row(3, "side indicator", indicator),
		m.inputRow(4, "content font", m.contentFont),
		m.inputRow(5, "title font", m.titleFont),
		m.inputRow(6, "tags font", m.tagsFont),
	}

	tail := []string{"", help}
	if m.err != "" {
		tail = []string{"", errorStyle.Render(m.err), help}
	}
	body := strings.Join(append(append([]string{header, ""}, rows...), tail...), "\n")
	return m.box.Render(body)
}

func (m *settingsModal) row(idx int, label, value string) string {
	line := fmt.Sprintf("%-16s ◀ %s ▶", label+":", value)
	if idx == m.focus {
		return labelStyle.Render(line)
	}
	return line
}

func (m *settingsModal) inputRow(idx int, label string, in textinput.Model) string {
	prefix := fmt.Sprintf("%-16s ", label+":")
	if idx == m.focus {
		prefix = labelStyle.Render(prefix)
	}
	return prefix + in.View()
}

func (m *settingsModal) Init() tea.Cmd                           { return nil }
func (m *settingsModal) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return m.update(msg) }
