package seo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "content-length",
			Field:       "body",
			Group:       "seo",
			Description: "Body meets the configured minimum word count",
			Severity:    lint.SeverityWarning,
			Check:       checkContentLength,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "noindex-draft",
			Field:       "noindex",
			Group:       "seo",
			Description: "Published content should not carry noindex",
			Severity:    lint.SeverityWarning,
			Check:       checkNoindexDraft,
		}
	})
}

func checkContentLength(item *content.Item, ctx *lint.Context) []lint.Result {
	minWords := ctx.ThresholdsFor(item.Type).Content.MinWords
	if minWords <= 0 {
		return nil
	}
	words := textmetrics.WordCount(textmetrics.Canonicalize(item.Body))
	if words >= minWords {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("body has %d words, minimum is %d", words, minWords),
		Suggestion: "thin content rarely ranks; expand or consolidate the page",
	}}
}

func checkNoindexDraft(item *content.Item, _ *lint.Context) []lint.Result {
	if !item.NoIndex || item.Draft {
		return nil
	}
	return []lint.Result{{
		Message:    "published document is marked noindex",
		Suggestion: "remove noindex or mark the document as draft",
	}}
}
