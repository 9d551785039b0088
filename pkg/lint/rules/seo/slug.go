package seo

import (
	"fmt"
	"regexp"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

var slugShapeRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "slug-format",
			Field:       "slug",
			Group:       "seo",
			Description: "Slug uses lowercase words separated by hyphens",
			Severity:    lint.SeverityError,
			FixStrategy: "slugify",
			Check:       checkSlugFormat,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "slug-length",
			Field:       "slug",
			Group:       "seo",
			Description: "Slug length within the configured maximum",
			Severity:    lint.SeverityWarning,
			Check:       checkSlugLength,
		}
	})
}

func checkSlugFormat(item *content.Item, _ *lint.Context) []lint.Result {
	if item.Slug == "" {
		return nil
	}
	if slugShapeRe.MatchString(item.Slug) {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("slug %q is not lowercase-hyphenated", item.Slug),
		Suggestion: "use lowercase letters, digits and single hyphens",
	}}
}

func checkSlugLength(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Slug == "" {
		return nil
	}
	maxLen := ctx.ThresholdsFor(item.Type).Slug.MaxLength
	if maxLen <= 0 || len(item.Slug) <= maxLen {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("slug is %d characters, maximum is %d", len(item.Slug), maxLen),
		Suggestion: "trim filler words from the slug",
	}}
}
