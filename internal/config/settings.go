package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mithrel/cardstock/pkg/models"
)

// Settings is the materialized application configuration: the string
// spellings of the settings file resolved into closed enumerations.
type Settings struct {
	ContentFontSize   int
	TitleFontSize     int
	TagsFontSize      int
	Theme             models.Theme
	Orientation       models.Orientation
	Size              models.CardSize
	ShowSideIndicator bool
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		ContentFontSize: 12,
		TitleFontSize:   16,
		TagsFontSize:    10,
		Theme:           models.ThemeLight,
		Orientation:     models.Portrait,
		Size:            models.Size3x5,
	}
}

// FromViper materializes Settings from resolved configuration.
// Invalid values fail; callers decide whether to fall back to defaults.
func FromViper(v *viper.Viper) (Settings, error) {
	if err := CheckConfigValidity(v); err != nil {
		return DefaultSettings(), err
	}

	theme, _ := models.ParseTheme(v.GetString("card_theme"))
	orient, _ := models.ParseOrientation(v.GetString("card_orientation"))
	size, _ := models.ParseCardSize(v.GetString("card_size"))

	return Settings{
		ContentFontSize:   v.GetInt("content_font_size"),
		TitleFontSize:     v.GetInt("title_font_size"),
		TagsFontSize:      v.GetInt("tags_font_size"),
		Theme:             theme,
		Orientation:       orient,
		Size:              size,
		ShowSideIndicator: v.GetBool("show_side_indicator"),
	}, nil
}

// settingsFile is the on-disk JSON shape. The key set is fixed; enums
// are written in their settings-file spelling.
type settingsFile struct {
	ContentFontSize   int    `json:"content_font_size"`
	TitleFontSize     int    `json:"title_font_size"`
	TagsFontSize      int    `json:"tags_font_size"`
	CardTheme         string `json:"card_theme"`
	CardOrientation   string `json:"card_orientation"`
	CardSize          string `json:"card_size"`
	ShowSideIndicator bool   `json:"show_side_indicator"`
}

// Save writes the settings as JSON to path, creating parent
// directories as needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := settingsFile{
		ContentFontSize:   s.ContentFontSize,
		TitleFontSize:     s.TitleFontSize,
		TagsFontSize:      s.TagsFontSize,
		CardTheme:         s.Theme.String(),
		CardOrientation:   s.Orientation.String(),
		CardSize:          s.Size.String(),
		ShowSideIndicator: s.ShowSideIndicator,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
