package seo

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

// defaultGenericAuthors are bylines that carry no authority signal.
var defaultGenericAuthors = []string{"admin", "administrator", "editor", "team", "staff", "webmaster"}

func init() {
	lint.Register(newAuthorGenericRule)
}

func newAuthorGenericRule(p *lint.Params) lint.RuleDef {
	generic := make(map[string]bool)
	for _, n := range defaultGenericAuthors {
		generic[n] = true
	}
	for _, n := range p.Geo.GenericAuthorNames {
		generic[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return lint.RuleDef{
		Name:        "author-generic",
		Field:       "author",
		Group:       "seo",
		Description: "Byline names a real author, not a generic account",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, _ *lint.Context) []lint.Result {
			if item.Type != content.TypeBlog || item.Author == "" {
				return nil
			}
			if !generic[strings.ToLower(strings.TrimSpace(item.Author))] {
				return nil
			}
			return []lint.Result{{
				Message:    fmt.Sprintf("author %q is a generic byline", item.Author),
				Suggestion: "credit a named author; bylines feed authority signals",
			}}
		},
	}
}
