package site

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "broken-internal-link",
			Field:       "body",
			Group:       "site",
			Description: "Internal links resolve to a known route",
			Severity:    lint.SeverityError,
			Check:       checkInternalLinks,
		}
	})
}

func checkInternalLinks(item *content.Item, ctx *lint.Context) []lint.Result {
	var results []lint.Result
	for _, l := range ctx.Links.Extract(item.Body) {
		if !l.Internal || strings.HasPrefix(l.URL, "#") {
			continue
		}
		// A target that does not even parse is reported as malformed
		// rather than propagated as a failure.
		if _, err := url.Parse(l.URL); err != nil {
			results = append(results, lint.Result{
				Line:       l.Line,
				Message:    fmt.Sprintf("malformed link %q", l.URL),
				Suggestion: "fix the URL syntax",
			})
			continue
		}
		if ctx.IsValidLink(l.Normalized) {
			continue
		}
		results = append(results, lint.Result{
			Line:       l.Line,
			Message:    fmt.Sprintf("internal link %q does not resolve", l.URL),
			Suggestion: "update the link or add the missing page",
		})
	}
	return results
}
