package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/internal/export"
	"github.com/mithrel/cardstock/pkg/models"
)

const (
	autosaveInterval = 30 * time.Second
	statusLinger     = 2 * time.Second
)

// autosaveTickMsg fires the periodic autosave pass.
type autosaveTickMsg time.Time

// statusClearMsg expires a transient status message. seq guards
// against clearing a newer message than the one that scheduled it.
type statusClearMsg struct {
	seq int
}

// exportResultMsg conveys the outcome of an export back to Update.
type exportResultMsg struct {
	kind exportKind
	path string
	err  error
	dur  time.Duration
}

func autosaveTick() tea.Cmd {
	return tea.Tick(autosaveInterval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// exportCmd writes the card to path in the requested format. PDF
// exports also hand the file to the platform viewer; a viewer failure
// is not an export failure.
func exportCmd(kind exportKind, path string, c models.Card, s config.Settings) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		var err error
		switch kind {
		case exportMarkdown:
			err = export.WriteMarkdown(path, c)
		default:
			err = export.WritePDF(path, c, s)
			if err == nil {
				_ = export.OpenInViewer(path)
			}
		}
		return exportResultMsg{kind: kind, path: path, err: err, dur: time.Since(start)}
	}
}
