package site

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

var htmlOpenTagRe = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9-]*)\b`)

// defaultAllowedTags are the inline tags markdown cannot express.
var defaultAllowedTags = []string{"br", "img", "a", "sup", "sub", "kbd", "abbr", "mark"}

func init() {
	lint.Register(newAllowedHTMLRule)
}

func newAllowedHTMLRule(p *lint.Params) lint.RuleDef {
	allowed := make(map[string]bool)
	tags := p.Geo.AllowedHTMLTags
	if len(tags) == 0 {
		tags = defaultAllowedTags
	}
	for _, t := range tags {
		allowed[strings.ToLower(strings.TrimSpace(t))] = true
	}

	return lint.RuleDef{
		Name:        "allowed-html-tags",
		Field:       "body",
		Group:       "site",
		Description: "Raw HTML restricted to the allowed tag set",
		Severity:    lint.SeverityWarning,
		Check: func(item *content.Item, _ *lint.Context) []lint.Result {
			fences := textmetrics.IndexFences(item.Body)
			var results []lint.Result
			flagged := make(map[string]bool)
			for i, line := range strings.Split(item.Body, "\n") {
				lineNo := i + 1
				if fences.Inside(lineNo) {
					continue
				}
				for _, m := range htmlOpenTagRe.FindAllStringSubmatch(line, -1) {
					tag := strings.ToLower(m[1])
					if allowed[tag] || flagged[tag] {
						continue
					}
					flagged[tag] = true
					results = append(results, lint.Result{
						Line:       lineNo,
						Message:    fmt.Sprintf("raw HTML tag <%s> is not in the allowed set", tag),
						Suggestion: "prefer markdown syntax or extend allowedHtmlTags",
					})
				}
			}
			return results
		},
	}
}
