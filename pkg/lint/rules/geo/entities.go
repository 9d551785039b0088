package geo

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	geodetect "github.com/leapstack-labs/sitelint/pkg/geo"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(newEntityMentionsRule)
	lint.Register(newKeywordUsageRule)
}

func newEntityMentionsRule(p *lint.Params) lint.RuleDef {
	brand := p.Geo.BrandName
	city := p.Geo.BrandCity
	return lint.RuleDef{
		Name:        "entity-mentions",
		Field:       "body",
		Group:       "geo",
		Description: "Content mentions the configured brand entities",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) || brand == "" {
				return nil
			}
			text := item.Title + "\n" + item.Body
			var results []lint.Result
			if geodetect.CountEntityMentions(text, brand) == 0 {
				results = append(results, lint.Result{
					Message:    fmt.Sprintf("brand %q is never mentioned", brand),
					Suggestion: "tie the content to the brand so answer engines associate the two",
				})
			}
			if city != "" && geodetect.CountEntityMentions(text, city) == 0 {
				results = append(results, lint.Result{
					Message:    fmt.Sprintf("location %q is never mentioned", city),
					Suggestion: "mention the location for local-intent queries",
				})
			}
			return results
		},
	}
}

func newKeywordUsageRule(p *lint.Params) lint.RuleDef {
	path := p.Geo.KeywordsPath
	return lint.RuleDef{
		Name:        "keyword-usage",
		Field:       "body",
		Group:       "geo",
		Description: "Content uses at least one keyword from the keyword file",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, ctx *lint.Context) []lint.Result {
			if !ctx.GeoEnabled(item.Type) || path == "" {
				return nil
			}
			keywords, err := ctx.Keywords(path)
			if err != nil || len(keywords) == 0 {
				// An unreadable keyword file disables the check, it does not
				// fail the item.
				return nil
			}
			haystack := strings.ToLower(item.Title + "\n" + textmetrics.Canonicalize(item.Body))
			for _, kw := range keywords {
				if strings.Contains(haystack, strings.ToLower(kw)) {
					return nil
				}
			}
			return []lint.Result{{
				Message:    fmt.Sprintf("none of the %d tracked keywords appear in title or body", len(keywords)),
				Suggestion: "work a tracked keyword into the title or opening section",
			}}
		},
	}
}
