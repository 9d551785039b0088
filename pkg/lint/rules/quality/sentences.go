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
			Name:        "sentence-length",
			Field:       "body",
			Group:       "quality",
			Description: "Average and maximum sentence length stay within bounds",
			Severity:    lint.SeverityWarning,
			Check:       checkSentenceLength,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "sentence-variety",
			Field:       "body",
			Group:       "quality",
			Description: "Sentence lengths vary enough to avoid monotony",
			Severity:    lint.SeverityWarning,
			Check:       checkSentenceVariety,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "sentence-beginnings",
			Field:       "body",
			Group:       "quality",
			Description: "No three consecutive sentences open with the same word",
			Severity:    lint.SeverityWarning,
			Check:       checkSentenceBeginnings,
		}
	})
}

func checkSentenceLength(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	stats := textmetrics.AnalyzeSentences(a.text)
	var results []lint.Result
	if stats.Mean > float64(a.bounds.MaxAvgSentenceWords) {
		results = append(results, lint.Result{
			Message: fmt.Sprintf("average sentence length %.1f words exceeds the maximum %d",
				stats.Mean, a.bounds.MaxAvgSentenceWords),
			Suggestion: "split long sentences",
		})
	}
	if stats.Max > a.bounds.MaxSentenceWords {
		results = append(results, lint.Result{
			Message: fmt.Sprintf("longest sentence has %d words, exceeding the maximum %d",
				stats.Max, a.bounds.MaxSentenceWords),
			Suggestion: "break the longest sentence into two",
		})
	}
	return results
}

func checkSentenceVariety(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	stats := textmetrics.AnalyzeSentences(a.text)
	if stats.Count < 2 || stats.Variation >= a.bounds.MinSentenceVariation {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("sentence-length variation %.2f is below the minimum %.2f",
			stats.Variation, a.bounds.MinSentenceVariation),
		Suggestion: "mix short sentences in with longer ones",
	}}
}

func checkSentenceBeginnings(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	var results []lint.Result
	for _, run := range textmetrics.FindBeginningRuns(a.text, a.locale) {
		results = append(results, lint.Result{
			Message: fmt.Sprintf("%d consecutive sentences begin with %q", run.Count, run.Word),
			Suggestion: "rephrase some openings to vary the rhythm",
		})
	}
	return results
}
