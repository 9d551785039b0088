package site

import (
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "orphaned-page",
			Field:       "permalink",
			Group:       "site",
			Description: "Every page is reachable through at least one internal link",
			Severity:    lint.SeverityWarning,
			Check:       checkOrphaned,
		}
	})
}

func checkOrphaned(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Permalink == "" || item.Permalink == "/" {
		return nil
	}
	normalized := ctx.Links.Normalize(item.Permalink)
	for _, source := range ctx.InboundLinks(normalized) {
		if source != item.FilePath {
			return nil
		}
	}
	return []lint.Result{{
		Message:    "no internal links point to this page",
		Suggestion: "link to the page from related content or navigation",
	}}
}
