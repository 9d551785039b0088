package seo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "title-required",
			Field:       "title",
			Group:       "seo",
			Description: "Every document needs a title",
			Severity:    lint.SeverityError,
			Check:       checkTitleRequired,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "title-length",
			Field:       "title",
			Group:       "seo",
			Description: "Title length within the configured bounds",
			Severity:    lint.SeverityError,
			FixStrategy: "rewrite-title",
			Check:       checkTitleLength,
		}
	})
}

func checkTitleRequired(item *content.Item, _ *lint.Context) []lint.Result {
	if item.Title != "" {
		return nil
	}
	return []lint.Result{{
		Message:    "missing title",
		Suggestion: "add a title to the frontmatter",
	}}
}

func checkTitleLength(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Title == "" {
		return nil // title-required owns the missing case
	}
	bounds := ctx.ThresholdsFor(item.Type).Title
	length := len([]rune(item.Title))

	if bounds.MaxLength > 0 && length > bounds.MaxLength {
		return []lint.Result{{
			Message:    fmt.Sprintf("title is %d characters, maximum is %d", length, bounds.MaxLength),
			Suggestion: "shorten the title; search engines truncate long titles",
		}}
	}
	if bounds.MinLength > 0 && length < bounds.MinLength {
		return []lint.Result{{
			Message:    fmt.Sprintf("title is %d characters, minimum is %d", length, bounds.MinLength),
			Suggestion: "expand the title with descriptive keywords",
		}}
	}
	return nil
}
