package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/cardstock/pkg/models"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
// This centralizes default values and descriptions in one place.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// A missing or unreadable settings file is not an error; defaults win.
func Load(ctx context.Context, v *viper.Viper) error {
	// Configure Viper search paths. If SetConfigFile was provided
	// upstream, it takes precedence; these paths are harmless fallbacks.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("json")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "cardstock"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cardstock"))
		}
		v.AddConfigPath(".")
	}

	// Apply centralized defaults (lowest precedence)
	applyDefaults(v)

	// Read config file if present (overrides defaults); a broken file
	// falls back to defaults rather than aborting launch.
	_ = v.ReadInConfig()

	// Environment variables: CARDSTOCK_* (highest among these sources)
	v.SetEnvPrefix("cardstock")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.GetString("log_file") == "" {
		v.Set("log_file", defaultLogPath())
	}
	return nil
}

// CheckConfigValidity reports every invalid setting at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	for _, key := range []string{"content_font_size", "title_font_size", "tags_font_size"} {
		if v.GetInt(key) <= 0 {
			problems = append(problems, key+" must be greater than 0")
		}
	}
	if _, err := models.ParseTheme(v.GetString("card_theme")); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := models.ParseOrientation(v.GetString("card_orientation")); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := models.ParseCardSize(v.GetString("card_size")); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
}

// DefaultConfigPath resolves the standard config.json location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "cardstock", "config.json")
}

// defaultLogPath resolves the log file under the XDG state dir:
// $XDG_STATE_HOME/cardstock/cardstock.log or ~/.local/state/cardstock.
func defaultLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cardstock", "cardstock.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "cardstock", "cardstock.log")
}
