package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/internal/logger"
	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

const defaultFront = `# Sample Card

This is the front of a sample index card created with **Cardstock**.

- Use markdown formatting
- Create beautiful cards
- Export to PDF
- Add content to both sides

Tags: #sample #cardstock #markdown`

const newCardFront = "# New Card\n\nContent goes here...\n\nTags: #new"

// Run opens the interactive editor and blocks until the user quits.
func Run(ctx context.Context, settings config.Settings, configPath string, log *logger.Logger) error {
	deck := models.NewDeck(transform.Title, models.Card{Front: defaultFront})

	ta := textarea.New()
	ta.Placeholder = "Type markdown here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(deck.CurrentText())
	ta.Focus()

	m := model{
		deck:       deck,
		settings:   settings,
		configPath: configPath,
		log:        log,
		editor:     ta,
		lastHash:   deck.Current().Hash(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type model struct {
	deck       *models.Deck
	settings   config.Settings
	configPath string
	log        *logger.Logger

	editor textarea.Model
	width  int
	height int

	status    string
	statusErr bool
	statusSeq int
	lastHash  string

	settingsM *settingsModal
	exportM   *exportModal
	pickerM   *pickerModal
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, autosaveTick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		if m.settingsM != nil {
			m.settingsM.resizeForTerm(msg.Width, msg.Height)
		}
		if m.exportM != nil {
			m.exportM.resizeForTerm(msg.Width, msg.Height)
		}
		if m.pickerM != nil {
			m.pickerM.resizeForTerm(msg.Width, msg.Height)
		}
		return m, nil

	case autosaveTickMsg:
		m.deck.SaveCurrent(m.editor.Value())
		if h := m.deck.Current().Hash(); h != m.lastHash {
			m.lastHash = h
			m.log.CardSaved(m.deck.Index(), m.deck.Side().String(), "autosave")
			return m, tea.Batch(autosaveTick(), m.setStatus("Autosaved"))
		}
		return m, autosaveTick()

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case exportResultMsg:
		if msg.err != nil {
			m.log.ExportError(msg.kind.String(), msg.path, msg.err)
			return m, m.setError(fmt.Sprintf("Export failed: %v", msg.err))
		}
		m.log.Exported(msg.kind.String(), msg.path, msg.dur)
		return m, m.setStatus("Exported " + msg.path)
	}

	if m.settingsM != nil {
		return m.updateSettingsModal(msg)
	}
	if m.exportM != nil {
		return m.updateExportModal(msg)
	}
	if m.pickerM != nil {
		return m.updatePickerModal(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			m.deck.SaveCurrent(m.editor.Value())
			m.lastHash = m.deck.Current().Hash()
			m.log.CardSaved(m.deck.Index(), m.deck.Side().String(), "manual")
			return m, m.setStatus("Saved")

		case "ctrl+n":
			m.deck.Append(m.editor.Value(), models.Card{Front: newCardFront})
			m.reloadEditor()
			return m, m.setStatus("New card")

		case "ctrl+f":
			if m.deck.Switch(models.SideFront, m.editor.Value()) {
				m.reloadEditor()
			}
			return m, nil

		case "ctrl+b":
			if m.deck.Switch(models.SideBack, m.editor.Value()) {
				m.reloadEditor()
			}
			return m, nil

		case "ctrl+left":
			if m.deck.Prev(m.editor.Value()) {
				m.reloadEditor()
			}
			return m, nil

		case "ctrl+right":
			if m.deck.Next(m.editor.Value()) {
				m.reloadEditor()
			}
			return m, nil

		case "ctrl+p":
			title := transform.Title(m.deck.Current().Front)
			m.exportM = newExportModal(exportPDF, suggestedName(title, exportPDF), m.width, m.height)
			return m, nil

		case "ctrl+e":
			title := transform.Title(m.deck.Current().Front)
			m.exportM = newExportModal(exportMarkdown, suggestedName(title, exportMarkdown), m.width, m.height)
			return m, nil

		case "ctrl+o":
			m.settingsM = newSettingsModal(m.settings, m.width, m.height)
			return m, nil

		case "ctrl+t":
			m.settings.Orientation = m.settings.Orientation.Toggled()
			if err := m.settings.Save(m.configPath); err != nil {
				m.log.SettingsError("save", err)
				return m, m.setError(fmt.Sprintf("Settings not saved: %v", err))
			}
			m.log.SettingsSaved(m.configPath)
			return m, m.setStatus(m.settings.Orientation.String())

		case "ctrl+j":
			m.deck.SaveCurrent(m.editor.Value())
			m.pickerM = newPickerModal(m.deck.Titles(), m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) updateSettingsModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.settingsM = nil
			return m, nil
		case "enter":
			s, err := m.settingsM.settings()
			if err != nil {
				m.settingsM.err = err.Error()
				return m, nil
			}
			m.settings = s
			m.settingsM = nil
			if err := s.Save(m.configPath); err != nil {
				m.log.SettingsError("save", err)
				return m, m.setError(fmt.Sprintf("Settings not saved: %v", err))
			}
			m.log.SettingsSaved(m.configPath)
			return m, m.setStatus("Settings saved")
		}
	}
	var cmd tea.Cmd
	m.settingsM, cmd = m.settingsM.update(msg)
	return m, cmd
}

func (m model) updateExportModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.exportM = nil
			return m, nil
		case "enter":
			path := m.exportM.value()
			if path == "" {
				return m, nil
			}
			kind := m.exportM.kind
			m.exportM = nil
			m.deck.SaveCurrent(m.editor.Value())
			m.lastHash = m.deck.Current().Hash()
			return m, tea.Batch(
				exportCmd(kind, path, m.deck.Current(), m.settings),
				m.setStatus("Exporting..."),
			)
		}
	}
	var cmd tea.Cmd
	m.exportM, cmd = m.exportM.update(msg)
	return m, cmd
}

func (m model) updatePickerModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.pickerM = nil
			return m, nil
		case "enter":
			idx := m.pickerM.selected()
			m.pickerM = nil
			if idx >= 0 && m.deck.Jump(idx, m.editor.Value()) {
				m.reloadEditor()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.pickerM, cmd = m.pickerM.update(msg)
	return m, cmd
}

// reloadEditor replaces the editor buffer with the current card side.
func (m *model) reloadEditor() {
	m.editor.SetValue(m.deck.CurrentText())
	m.lastHash = m.deck.Current().Hash()
}

func (m *model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusErr = false
	m.statusSeq++
	return clearStatusAfter(m.statusSeq)
}

func (m *model) setError(s string) tea.Cmd {
	m.status = s
	m.statusErr = true
	m.statusSeq++
	return clearStatusAfter(m.statusSeq)
}

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	editorW := m.width/2 - 2
	if editorW < 20 {
		editorW = max(10, m.width-2)
	}
	m.editor.SetWidth(editorW)
	m.editor.SetHeight(max(3, m.height-4))
}

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "loading..."
	}

	left := editorFrame.Render(m.editor.View())
	leftW := lipgloss.Width(left)
	previewW := m.width - leftW
	previewH := m.height - 2

	var main string
	if previewW >= 10 {
		right := renderPreview(m.editor.Value(), m.deck.Side(), m.settings, previewW, previewH)
		main = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		main = left
	}

	view := main + "\n" + m.statusBar() + "\n" + m.helpBar()

	switch {
	case m.settingsM != nil:
		fg := m.settingsM.View()
		return m.renderOverlay(view, fg, lipgloss.Width(fg), lipgloss.Height(fg))
	case m.exportM != nil:
		fg := m.exportM.View()
		return m.renderOverlay(view, fg, lipgloss.Width(fg), lipgloss.Height(fg))
	case m.pickerM != nil:
		fg := m.pickerM.View()
		return m.renderOverlay(view, fg, lipgloss.Width(fg), lipgloss.Height(fg))
	}
	return view
}

func (m model) statusBar() string {
	left := ""
	if m.status != "" {
		if m.statusErr {
			left = errorStyle.Render(m.status)
		} else {
			left = statusStyle.Render(m.status)
		}
	}

	right := fmt.Sprintf("Card %d of %d • %s • %d chars",
		m.deck.Index()+1, m.deck.Len(), m.deck.Side(), len(m.editor.Value()))

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}

func (m model) helpBar() string {
	return helpStyle.Render(
		"^S save • ^N new • ^P pdf • ^E markdown • ^F/^B side • ^←/^→ card • ^T rotate • ^O settings • ^J jump • esc quit")
}
