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
			Name:        "passive-voice",
			Field:       "body",
			Group:       "quality",
			Description: "Passive-sentence share stays under the configured maximum",
			Severity:    lint.SeverityWarning,
			Check:       checkPassiveVoice,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "transition-words",
			Field:       "body",
			Group:       "quality",
			Description: "Enough sentences connect to the previous one with a transition",
			Severity:    lint.SeverityWarning,
			Check:       checkTransitionWords,
		}
	})
}

func checkPassiveVoice(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	stats := textmetrics.AnalyzePassiveVoice(a.text, a.locale)
	if stats.Ratio <= a.bounds.MaxPassiveRatio {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("%d of %d sentences (%.0f%%) are passive, above the maximum %.0f%%",
			stats.Passive, stats.Total, stats.Ratio*100, a.bounds.MaxPassiveRatio*100),
		Suggestion: "rewrite passive constructions with an active subject",
	}}
}

func checkTransitionWords(item *content.Item, ctx *lint.Context) []lint.Result {
	a, ok := analyze(item, ctx)
	if !ok {
		return nil
	}
	ratio := textmetrics.TransitionRatio(a.text, a.locale)
	if ratio >= a.bounds.MinTransitionRatio {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("%.0f%% of sentences use a transition word, below the minimum %.0f%%",
			ratio*100, a.bounds.MinTransitionRatio*100),
		Suggestion: "connect ideas with transitions such as \"however\" or \"therefore\"",
	}}
}
