package structure

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "heading-hierarchy",
			Field:       "body",
			Group:       "structure",
			Description: "Heading levels increase at most one step at a time",
			Severity:    lint.SeverityError,
			Check:       checkHeadingHierarchy,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "single-h1",
			Field:       "body",
			Group:       "structure",
			Description: "At most one H1 per document",
			Severity:    lint.SeverityWarning,
			Check:       checkSingleH1,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "heading-density",
			Field:       "body",
			Group:       "structure",
			Description: "No more than 300 words between headings",
			Severity:    lint.SeverityWarning,
			Check:       checkHeadingDensity,
		}
	})
}

func checkHeadingHierarchy(item *content.Item, _ *lint.Context) []lint.Result {
	headings := textmetrics.ExtractHeadings(item.Body)
	var results []lint.Result
	for _, issue := range textmetrics.ValidateHierarchy(headings) {
		results = append(results, lint.Result{
			Line: issue.Heading.Line,
			Message: fmt.Sprintf("heading %q is level %d after level %d, expected at most level %d",
				issue.Heading.Text, issue.Heading.Level, issue.PreviousLevel, issue.ExpectedMaxLevel),
			Suggestion: "do not skip heading levels",
		})
	}
	return results
}

func checkSingleH1(item *content.Item, _ *lint.Context) []lint.Result {
	var results []lint.Result
	seen := false
	for _, h := range textmetrics.ExtractHeadings(item.Body) {
		if h.Level != 1 {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		results = append(results, lint.Result{
			Line:       h.Line,
			Message:    fmt.Sprintf("additional H1 %q; the page title already renders as H1", h.Text),
			Suggestion: "demote extra H1 headings to H2",
		})
	}
	return results
}

func checkHeadingDensity(item *content.Item, _ *lint.Context) []lint.Result {
	var results []lint.Result
	for _, gap := range geoGaps(item.Body) {
		where := "before the first heading"
		if gap.AfterHeading != "" {
			where = fmt.Sprintf("after heading %q", gap.AfterHeading)
		}
		results = append(results, lint.Result{
			Line:       gap.Line,
			Message:    fmt.Sprintf("%d words %s without a subheading (maximum 300)", gap.Words, where),
			Suggestion: "break long stretches up with descriptive subheadings",
		})
	}
	return results
}
