package site

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "duplicate-title",
			Field:       "title",
			Group:       "site",
			Description: "Title is unique across the site",
			Severity:    lint.SeverityError,
			Check:       checkDuplicateTitle,
		}
	})
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "duplicate-description",
			Field:       "description",
			Group:       "site",
			Description: "Description is unique across the site",
			Severity:    lint.SeverityError,
			Check:       checkDuplicateDescription,
		}
	})
}

func checkDuplicateTitle(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Title == "" {
		return nil
	}
	dupes := ctx.DuplicateTitleFiles(item)
	if len(dupes) == 0 {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("title duplicates %s", strings.Join(dupes, ", ")),
		Suggestion: "differentiate the titles; identical titles split ranking signals",
	}}
}

func checkDuplicateDescription(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.Description == "" {
		return nil
	}
	dupes := ctx.DuplicateDescriptionFiles(item)
	if len(dupes) == 0 {
		return nil
	}
	return []lint.Result{{
		Message:    fmt.Sprintf("description duplicates %s", strings.Join(dupes, ", ")),
		Suggestion: "write a distinct description for each page",
	}}
}
