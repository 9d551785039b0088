package quality

import (
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// analysis is the shared per-item preparation for quality checks.
type analysis struct {
	text   string
	words  []string
	locale content.Locale
	bounds lint.ContentBounds
}

// analyze canonicalizes the body and resolves locale and thresholds.
// It returns ok=false when the document is below the word floor; every
// quality check treats that as "nothing to report".
func analyze(item *content.Item, ctx *lint.Context) (analysis, bool) {
	text := textmetrics.Canonicalize(item.Body)
	words := textmetrics.Words(text)
	bounds := ctx.ThresholdsFor(item.Type).Content
	if len(words) < bounds.MinWords {
		return analysis{}, false
	}
	return analysis{
		text:   text,
		words:  words,
		locale: ctx.LocaleFor(item),
		bounds: bounds,
	}, true
}
