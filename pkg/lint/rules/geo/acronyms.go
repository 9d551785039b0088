package geo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(newUnexpandedAcronymsRule)
}

func newUnexpandedAcronymsRule(p *lint.Params) lint.RuleDef {
	allowlist := p.Geo.AcronymAllowlist
	return lint.RuleDef{
		Name:        "unexpanded-acronyms",
		Field:       "body",
		Group:       "geo",
		Description: "Uncommon acronyms are expanded on first use",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) {
				return nil
			}
			var results []lint.Result
			text := textmetrics.Canonicalize(item.Body)
			for _, a := range geodetect.FindUnexpandedAcronyms(text, allowlist) {
				results = append(results, lint.Result{
					Message: fmt.Sprintf("acronym %q appears %d time(s) without an expansion",
						a.Acronym, a.Count),
					Suggestion: fmt.Sprintf("write %q followed by its full form in parentheses on first use", a.Acronym),
				})
			}
			return results
		},
	}
}
