package geo

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// minQuestionHeadingRatio is the question-heading share a document must
// reach. Exactly 20% passes; the comparison is strictly less-than.
const minQuestionHeadingRatio = 0.2

// defaultVagueHeadings are section titles that say nothing about the
// section's content. User configuration extends the list.
var defaultVagueHeadings = []string{
	"introduction", "conclusion", "overview", "summary", "more",
	"details", "miscellaneous", "einleitung", "fazit", "überblick",
	"zusammenfassung", "weiteres", "sonstiges",
}

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "question-headings",
			Field:       "body",
			Group:       "geo",
			Description: "At least 20% of subheadings are phrased as questions",
			Severity:    lint.SeverityWarning,
			Check:       checkQuestionHeadings,
		}
	})
	lint.Register(newDirectAnswersRule)
	lint.Register(newVagueHeadingsRule)
}

func checkQuestionHeadings(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	ratio, total := geodetect.QuestionHeadingRatio(item.Body, ctx.LocaleFor(item))
	if total == 0 || ratio >= minQuestionHeadingRatio {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("%.0f%% of subheadings are questions, below the 20%% target",
			ratio*100),
		Suggestion: "rephrase some H2/H3 headings as the questions readers actually ask",
	}}
}

func newDirectAnswersRule(p *lint.Params) lint.RuleDef {
	fillers := p.Geo.FillerPhrases
	return lint.RuleDef{
		Name:        "direct-answers",
		Field:       "body",
		Group:       "geo",
		Description: "Each section's first sentence answers its heading directly",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) {
				return nil
			}
			var results []lint.Result
			for _, r := range geodetect.CheckDirectness(item.Body, ctx.LocaleFor(item), fillers) {
				results = append(results, lint.Result{
					Line: r.Line,
					Message: fmt.Sprintf("section %q opens with filler %q instead of a direct answer",
						r.Section, r.Filler),
					Suggestion: "state the answer in the first sentence, then elaborate",
				})
			}
			return results
		},
	}
}

func newVagueHeadingsRule(p *lint.Params) lint.RuleDef {
	vague := make(map[string]bool)
	for _, h := range defaultVagueHeadings {
		vague[h] = true
	}
	for _, h := range p.Geo.VagueHeadings {
		vague[strings.ToLower(strings.TrimSpace(h))] = true
	}

	return lint.RuleDef{
		Name:        "vague-headings",
		Field:       "body",
		Group:       "geo",
		Description: "Subheadings describe their section instead of generic labels",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) {
				return nil
			}
			var results []lint.Result
			for _, h := range textmetrics.ExtractHeadings(item.Body) {
				if h.Level != 2 && h.Level != 3 {
					continue
				}
				if !vague[strings.ToLower(strings.TrimSpace(h.Text))] {
					continue
				}
				results = append(results, lint.Result{
					Line:       h.Line,
					Message:    fmt.Sprintf("heading %q is too generic to be cited", h.Text),
					Suggestion: "name what the section actually covers",
				})
			}
			return results
		},
	}
}
