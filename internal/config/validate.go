package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

var validSeverityValues = map[string]bool{"error": true, "warning": true, "off": true}

// Validate checks the loaded configuration. A failure here is fatal:
// nothing is linted against a broken configuration.
func Validate(cfg *Config) error {
	if cfg.SiteURL == "" {
		return fmt.Errorf("siteUrl is required")
	}
	if _, err := url.Parse(cfg.SiteURL); err != nil {
		return fmt.Errorf("siteUrl %q is not a valid URL: %w", cfg.SiteURL, err)
	}

	for i, cp := range cfg.ContentPaths {
		if cp.Dir == "" {
			return fmt.Errorf("contentPaths[%d]: dir is required", i)
		}
		if !content.ContentType(cp.Type).Valid() {
			return fmt.Errorf("contentPaths[%d]: unknown content type %q", i, cp.Type)
		}
		if _, err := os.Stat(cp.Dir); err != nil {
			return fmt.Errorf("contentPaths[%d]: %w", i, err)
		}
	}

	for name, value := range cfg.Rules {
		if !validSeverityValues[value] {
			return fmt.Errorf("rules.%s: invalid value %q (want error, warning, or off)", name, value)
		}
	}

	for _, t := range cfg.Geo.EnabledContentTypes {
		if !content.ContentType(t).Valid() {
			return fmt.Errorf("geo.enabledContentTypes: unknown content type %q", t)
		}
	}

	for key := range cfg.Thresholds.ByContentType {
		if !content.ContentType(key).Valid() {
			return fmt.Errorf("thresholds.byContentType: unknown content type %q", key)
		}
	}

	switch cfg.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("output: unknown format %q", cfg.OutputFormat)
	}
	return nil
}
