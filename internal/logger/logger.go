// Package logger wraps charmbracelet/log. The TUI owns the terminal,
// so the default destination is a file under the XDG state dir.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to path, creating parent
// directories as needed. The returned cleanup closes the file.
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := New(f, level)
	return l, func() { f.Close() }, nil
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return New(io.Discard, log.InfoLevel)
}

// ParseLevel maps a config string to a log level, defaulting to info.
func ParseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// CardSaved logs a card save with its provenance (manual, autosave,
// navigation).
func (l *Logger) CardSaved(index int, side, reason string) {
	l.Debug("card saved",
		"card", index,
		"side", side,
		"reason", reason)
}

// Exported logs a completed export.
func (l *Logger) Exported(kind, path string, dur time.Duration) {
	l.Info("export completed",
		"kind", kind,
		"path", path,
		"duration", dur.Round(time.Millisecond))
}

// ExportError logs a failed export.
func (l *Logger) ExportError(kind, path string, err error) {
	l.Error("export failed",
		"kind", kind,
		"path", path,
		"error", err)
}

// SettingsSaved logs a settings-file write.
func (l *Logger) SettingsSaved(path string) {
	l.Info("settings saved", "path", path)
}

// SettingsError logs a failed settings save.
func (l *Logger) SettingsError(operation string, err error) {
	l.Warn("settings error",
		"operation", operation,
		"error", err)
}

// SettingsFallback logs a settings load that fell back to the
// defaults. Launch proceeds, so this stays at debug.
func (l *Logger) SettingsFallback(err error) {
	l.Debug("settings load failed, using defaults", "error", err)
}
