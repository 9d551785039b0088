package config

// Default configuration values.
const (
	DefaultOutput = "auto" // auto-detect: TTY=text, non-TTY=markdown
	DefaultLocale = "de"
)

// DefaultLocales is the locale set assumed when i18n.locales is absent.
var DefaultLocales = []string{"de", "en"}

// defaultsMap is the lowest-precedence configuration layer.
func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"output":             DefaultOutput,
		"verbose":            false,
		"i18n.defaultLocale": DefaultLocale,
		"i18n.locales":       DefaultLocales,
	}
}

// ApplyDefaults fills in derived values a sparse file leaves open.
func ApplyDefaults(cfg *Config) {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutput
	}
	if cfg.I18N.DefaultLocale == "" {
		cfg.I18N.DefaultLocale = DefaultLocale
	}
	if len(cfg.I18N.Locales) == 0 {
		cfg.I18N.Locales = append([]string{}, DefaultLocales...)
	}
	for i := range cfg.ContentPaths {
		if cfg.ContentPaths[i].Type == "" {
			cfg.ContentPaths[i].Type = "page"
		}
		if cfg.ContentPaths[i].DefaultLocale == "" {
			cfg.ContentPaths[i].DefaultLocale = cfg.I18N.DefaultLocale
		}
	}
}
