package lint

import (
	"time"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

// GeoParams carries the GEO rule family's configuration: brand identity,
// allow lists, and phrase lists.
type GeoParams struct {
	BrandName          string
	BrandCity          string
	KeywordsPath       string
	EnabledTypes       []content.ContentType
	FillerPhrases      []string
	ExtractionTriggers []string
	AcronymAllowlist   []string
	VagueHeadings      []string
	GenericAuthorNames []string
	AllowedHTMLTags    []string
}

// Params parameterizes rule factories at registry-build time. After
// construction the produced rules behave as static rules for the run.
type Params struct {
	SiteURL       string
	Categories    []string
	DefaultLocale content.Locale
	Geo           GeoParams

	// Now anchors date-based checks; the runner sets it once per run so
	// every rule sees the same instant.
	Now time.Time
}
