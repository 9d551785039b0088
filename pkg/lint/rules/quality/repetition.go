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
			Name:        "paragraph-repetition",
			Field:       "body",
			Group:       "quality",
			Description: "Paragraphs do not restate each other",
			Severity:    lint.SeverityWarning,
			Check:       checkParagraphRepetition,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "repeated-phrases",
			Field:       "body",
			Group:       "quality",
			Description: "No five-word phrase recurs three or more times",
			Severity:    lint.SeverityWarning,
			Check:       checkRepeatedPhrases,
		}
	})
}

func checkParagraphRepetition(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	// The raw body, not the canonical text: the paragraph splitter needs
	// the heading and table markers to exclude those lines itself.
	similarity := textmetrics.ParagraphSimilarity(item.Body)
	if similarity <= a.bounds.MaxParagraphSimilarity {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("average paragraph similarity %.2f exceeds the maximum %.2f",
			similarity, a.bounds.MaxParagraphSimilarity),
		Suggestion: "merge or cut paragraphs that say the same thing",
	}}
}

func checkRepeatedPhrases(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	var results []lint.Result
	for _, rp := range textmetrics.RepeatedPhrases(a.text) {
		results = append(results, lint.Result{
			Message:    fmt.Sprintf("phrase %q appears %d times", rp.Phrase, rp.Count),
			Suggestion: "rephrase the repeated passage",
		})
	}
	return results
}
