package seo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(newCategoryRequiredRule)
	lint.Register(newCategoryUnknownRule)
}

// newCategoryRequiredRule is a factory closed over the configured
// category list. An empty list disables both category rules.
func newCategoryRequiredRule(p *lint.Params) lint.RuleDef {
	configured := len(p.Categories) > 0
	return lint.RuleDef{
		Name:        "category-required",
		Field:       "categories",
		Group:       "seo",
		Description: "Blog posts carry at least one category",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, _ *lint.Context) []lint.Result {
			if !configured || item.Type != content.TypeBlog {
				return nil
			}
			if len(item.Categories) > 0 {
				return nil
			}
			return []lint.Result{{
				Message:    "post has no category",
				Suggestion: "assign one of the configured categories",
			}}
		},
	}
}

func newCategoryUnknownRule(p *lint.Params) lint.RuleDef {
	known := make(map[string]bool, len(p.Categories))
	for _, c := range p.Categories {
		known[c] = true
	}
	return lint.RuleDef{
		Name:        "category-unknown",
		Field:       "categories",
		Group:       "seo",
		Description: "Categories come from the configured taxonomy",
		Severity:    lint.SeverityError,
		Check: func(item *content.Item, _ *lint.Context) []lint.Result {
			if len(known) == 0 {
				return nil
			}
			var results []lint.Result
			for _, c := range item.Categories {
				if known[c] {
					continue
				}
				results = append(results, lint.Result{
					Message:    fmt.Sprintf("unknown category %q", c),
					Suggestion: "fix the typo or add the category to the site configuration",
				})
			}
			return results
		},
	}
}
