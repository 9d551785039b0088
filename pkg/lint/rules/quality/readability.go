package quality

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "readability",
			Field:       "body",
			Group:       "quality",
			Description: "Reading-ease score meets the configured minimum",
			Severity:    lint.SeverityWarning,
			Check:       checkReadability,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "complex-words",
			Field:       "body",
			Group:       "quality",
			Description: "Share of hard vocabulary stays under the configured maximum",
			Severity:    lint.SeverityWarning,
			Check:       checkComplexWords,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "type-token-ratio",
			Field:       "body",
			Group:       "quality",
			Description: "Vocabulary diversity meets the configured minimum",
			Severity:    lint.SeverityWarning,
			Check:       checkTypeTokenRatio,
		}
	})
}

func checkReadability(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	score := textmetrics.ReadabilityScore(a.text, a.locale)
	if score >= a.bounds.MinReadability {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("readability score %.1f (%s) is below the minimum %.0f",
			score, textmetrics.InterpretReadability(score, a.locale), a.bounds.MinReadability),
		Suggestion: "shorten sentences and prefer simpler words",
	}}
}

func checkComplexWords(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	ratio := textmetrics.ComplexWordRatio(a.words, a.locale)
	if ratio <= a.bounds.MaxComplexWordRatio {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("%.0f%% of words are complex, above the maximum %.0f%%",
			ratio*100, a.bounds.MaxComplexWordRatio*100),
		Suggestion: "replace jargon and long derived forms with plain words",
	}}
}

func checkTypeTokenRatio(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	ratio := textmetrics.TypeTokenRatio(a.words)
	if ratio >= a.bounds.MinTypeTokenRatio {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("type-token ratio %.2f is below the minimum %.2f",
			ratio, a.bounds.MinTypeTokenRatio),
		Suggestion: "vary word choice; the text reuses the same vocabulary heavily",
	}}
}
