// Package config loads and validates the sitelint configuration file.
//
// Configuration merges four layers, lowest to highest precedence:
// built-in defaults, the sitelint.yaml file, SITELINT_-prefixed
// environment variables, and explicitly set CLI flags.
package config

import (
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// ContentPath is one directory of content files and how its items map
// onto the site.
type ContentPath struct {
	Dir           string `koanf:"dir"`
	Type          string `koanf:"type"`
	URLPrefix     string `koanf:"urlPrefix"`
	DefaultLocale string `koanf:"defaultLocale"`
}

// GeoConfig configures the GEO rule family.
type GeoConfig struct {
	BrandName           string   `koanf:"brandName"`
	BrandCity           string   `koanf:"brandCity"`
	KeywordsPath        string   `koanf:"keywordsPath"`
	EnabledContentTypes []string `koanf:"enabledContentTypes"`
	FillerPhrases       []string `koanf:"fillerPhrases"`
	ExtractionTriggers  []string `koanf:"extractionTriggers"`
	AcronymAllowlist    []string `koanf:"acronymAllowlist"`
	VagueHeadings       []string `koanf:"vagueHeadings"`
	GenericAuthorNames  []string `koanf:"genericAuthorNames"`
	AllowedHTMLTags     []string `koanf:"allowedHtmlTags"`
}

// I18NConfig configures locale handling.
type I18NConfig struct {
	Locales       []string `koanf:"locales"`
	DefaultLocale string   `koanf:"defaultLocale"`
}

// ThresholdsConfig is the thresholds block: a base document plus
// optional per-content-type overrides.
type ThresholdsConfig struct {
	Title         *lint.FieldBounds                  `koanf:"title"`
	Description   *lint.FieldBounds                  `koanf:"description"`
	Slug          *lint.SlugBounds                   `koanf:"slug"`
	Content       *lint.ContentBounds                `koanf:"content"`
	ByContentType map[string]*lint.ThresholdOverride `koanf:"byContentType"`
}

// Config holds every recognized sitelint option.
type Config struct {
	SiteURL           string            `koanf:"siteUrl"`
	ContentPaths      []ContentPath     `koanf:"contentPaths"`
	StaticRoutes      []string          `koanf:"staticRoutes"`
	ImageDirectories  []string          `koanf:"imageDirectories"`
	Categories        []string          `koanf:"categories"`
	ExcludeSlugs      []string          `koanf:"excludeSlugs"`
	ExcludeCategories []string          `koanf:"excludeCategories"`
	Geo               GeoConfig         `koanf:"geo"`
	I18N              I18NConfig        `koanf:"i18n"`
	Rules             map[string]string `koanf:"rules"`
	Thresholds        ThresholdsConfig  `koanf:"thresholds"`
	Verbose           bool              `koanf:"verbose"`
	OutputFormat      string            `koanf:"output"`

	// ProjectRoot anchors relative path resolution. Set by the loader,
	// never read from the file.
	ProjectRoot string `koanf:"-"`
}

// ResolvedThresholds folds the thresholds block onto the built-in base
// document.
func (c *Config) ResolvedThresholds() lint.Thresholds {
	return lint.ResolveThresholds(lint.DefaultThresholds(), &lint.ThresholdOverride{
		Title:       c.Thresholds.Title,
		Description: c.Thresholds.Description,
		Slug:        c.Thresholds.Slug,
		Content:     c.Thresholds.Content,
	})
}

// ByContentType returns the per-content-type override documents keyed by
// parsed content type. Unknown type keys are dropped.
func (c *Config) ByContentType() map[content.ContentType]*lint.ThresholdOverride {
	out := make(map[content.ContentType]*lint.ThresholdOverride)
	for key, override := range c.Thresholds.ByContentType {
		t := content.ContentType(key)
		if t.Valid() {
			out[t] = override
		}
	}
	return out
}

// GeoTypes returns the parsed content types the GEO family applies to.
func (c *Config) GeoTypes() []content.ContentType {
	var out []content.ContentType
	for _, s := range c.Geo.EnabledContentTypes {
		t := content.ContentType(s)
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}

// DefaultLocale returns the parsed site default locale.
func (c *Config) DefaultLocale() content.Locale {
	return content.ParseLocale(c.I18N.DefaultLocale)
}

// Params assembles the rule-factory parameters from the configuration.
func (c *Config) Params() *lint.Params {
	return &lint.Params{
		SiteURL:       c.SiteURL,
		Categories:    c.Categories,
		DefaultLocale: c.DefaultLocale(),
		Geo: lint.GeoParams{
			BrandName:          c.Geo.BrandName,
			BrandCity:          c.Geo.BrandCity,
			KeywordsPath:       c.Geo.KeywordsPath,
			EnabledTypes:       c.GeoTypes(),
			FillerPhrases:      c.Geo.FillerPhrases,
			ExtractionTriggers: c.Geo.ExtractionTriggers,
			AcronymAllowlist:   c.Geo.AcronymAllowlist,
			VagueHeadings:      c.Geo.VagueHeadings,
			GenericAuthorNames: c.Geo.GenericAuthorNames,
			AllowedHTMLTags:    c.Geo.AllowedHTMLTags,
		},
	}
}
