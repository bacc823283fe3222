package config

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for default values and
// for the "config options" listing.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Card appearance
		{Key: "content_font_size", Default: 12, Comment: "Point size for card body text in PDF output"},
		{Key: "title_font_size", Default: 16, Comment: "Point size for the card title band"},
		{Key: "tags_font_size", Default: 10, Comment: "Point size for the tags line"},
		{Key: "card_theme", Default: "light", Comment: "Card color scheme: light or dark"},
		{Key: "card_orientation", Default: "portrait", Comment: "Card orientation: portrait or landscape"},
		{Key: "card_size", Default: "3x5", Comment: "Physical card format: 3x5, 4x6 or 5x7"},
		{Key: "show_side_indicator", Default: false, Comment: "Draw a small F/B marker in the card corner"},

		// Not persisted with the settings file; env/flag overrides only
		{Key: "log_file", Default: "", Comment: "Log destination; defaults to the XDG state dir"},
		{Key: "log_level", Default: "info", Comment: "Log level: debug, info, warn or error"},
	}
}
