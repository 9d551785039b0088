package seo

import (
	"fmt"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "description-required",
			Field:       "description",
			Group:       "seo",
			Description: "Every document needs a meta description",
			Severity:    lint.SeverityError,
			Check:       checkDescriptionRequired,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "description-length",
			Field:       "description",
			Group:       "seo",
			Description: "Description length within the configured bounds",
			Severity:    lint.SeverityWarning,
			FixStrategy: "rewrite-description",
			Check:       checkDescriptionLength,
		}
	})
}

func checkDescriptionRequired(item *content.Item, _ *lint.Context) []lint.Result {
	if item.Description != "" {
		return nil
	}
	return []lint.Result{{
		Message:    "missing description",
		Suggestion: "add a description to the frontmatter; search engines use it for snippets",
	}}
}

func checkDescriptionLength(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Description == "" {
		return nil
	}
	bounds := ctx.ThresholdsFor(item.Type).Description
	length := len([]rune(item.Description))

	if bounds.MaxLength > 0 && length > bounds.MaxLength {
		return []lint.Result{{
			Message:    fmt.Sprintf("description is %d characters, maximum is %d", length, bounds.MaxLength),
			Suggestion: "shorten the description to avoid truncation in result snippets",
		}}
	}
	if bounds.MinLength > 0 && length < bounds.MinLength {
		return []lint.Result{{
			Message:    fmt.Sprintf("description is %d characters, minimum is %d", length, bounds.MinLength),
			Suggestion: "expand the description; short snippets waste result real estate",
		}}
	}
	return nil
}
