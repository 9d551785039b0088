package geo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// minStatisticDensity is the target number of quantitative claims per 100
// words for documents long enough to carry them.
const (
	minStatisticDensity = 0.5
	statisticFloorWords = 300
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "statistic-density",
			Field:       "body",
			Group:       "geo",
			Description: "Long content backs its claims with enough figures",
			Severity:    lint.SeverityWarning,
			Check:       checkStatisticDensity,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "contextless-statistics",
			Field:       "body",
			Group:       "geo",
			Description: "Every statistic carries attribution, a year, or a source link nearby",
			Severity:    lint.SeverityWarning,
			Check:       checkContextlessStatistics,
		}
	})
}

func checkStatisticDensity(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	density, count, words := geodetect.StatisticDensity(item.Body)
	if words < statisticFloorWords || density >= minStatisticDensity {
		return nil
	}
	return []lint.Result{{
		Message: fmt.Sprintf("%d statistics in %d words (%.2f per 100), below the %.1f target",
			count, words, density, minStatisticDensity),
		Suggestion: "add concrete figures; cited answers favor quantified claims",
	}}
}

func checkContextlessStatistics(item *content.Item, ctx *lint.Context) []lint.Result {
	if !ctx.GeoEnabled(item.Type) {
		return nil
	}
	var results []lint.Result
	// Fences are stripped, not canonicalized: link markup must survive so
	// a nearby source link still grounds the figure.
	for _, s := range geodetect.FindContextlessStatistics(textmetrics.StripCode(item.Body)) {
		results = append(results, lint.Result{
			Message:    fmt.Sprintf("statistic %q has no attribution, year, or source link nearby", s.Statistic),
			Suggestion: "name the source or year next to the figure",
		})
	}
	return results
}
