package geo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "stale-dates",
			Field:       "body",
			Group:       "geo",
			Description: "Referenced years are recent enough to signal freshness",
			Severity:    lint.SeverityWarning,
			Check:       checkStaleDates,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "unresolved-openings",
			Field:       "body",
			Group:       "geo",
			Description: "Sections open without dangling pronouns or back-references",
			Severity:    lint.SeverityWarning,
			Check:       checkUnresolvedOpenings,
		}
	})
}

func checkStaleDates(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	var results []lint.Result
	// Years inside code samples date the code, not the content.
	for _, sy := range geodetect.FindStaleYears(textmetrics.StripCode(item.Body), ctx.Now) {
		results = append(results, lint.Result{
			Message: fmt.Sprintf("year %d is referenced %d time(s) and reads as stale",
				sy.Year, sy.Count),
			Suggestion: "update the figures or date the claims explicitly",
		})
	}
	return results
}

func checkUnresolvedOpenings(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	var results []lint.Result
	for _, o := range geodetect.FindUnresolvedOpenings(item.Body, ctx.LocaleFor(item)) {
		results = append(results, lint.Result{
			Line: o.Line,
			Message: fmt.Sprintf("section %q opens with %q, which a reader arriving mid-page cannot resolve",
				o.Section, o.Marker),
			Suggestion: "restate the subject so the section stands alone",
		})
	}
	return results
}
