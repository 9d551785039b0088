package site

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func init() {
	lint.Register(func(*lint.Params) lint.RuleDef {
		return lint.RuleDef{
			Name:        "translation-parity",
			Field:       "translationKey",
			Group:       "site",
			Description: "Translated content exists in the default locale and at least one other",
			Severity:    lint.SeverityWarning,
			Check:       checkTranslationParity,
		}
	})
}

// checkTranslationParity warns when a translation group is one-sided. To
// avoid the same warning on every member, the non-default side reports
// only through its first item by slug in lexicographic order. That
// convention is load-bearing for downstream tooling; keep it.
func checkTranslationParity(item *content.Item, ctx *lint.Context) []lint.Result {
	if item.TranslationKey == "" {
		return nil
	}

	var defaults, others []*content.Item
	for _, other := range ctx.Items {
		if other.TranslationKey != item.TranslationKey {
			continue
		}
		if ctx.LocaleFor(other) == ctx.DefaultLocale {
			defaults = append(defaults, other)
		} else {
			others = append(others, other)
		}
	}

	itemIsDefault := ctx.LocaleFor(item) == ctx.DefaultLocale

	if itemIsDefault && len(others) == 0 {
		return []lint.Result{{
			Message:    fmt.Sprintf("translation key %q has no non-default-locale counterpart", item.TranslationKey),
			Suggestion: "add the missing translation or drop the translation key",
		}}
	}
	if !itemIsDefault && len(defaults) == 0 {
		sort.Slice(others, func(i, j int) bool { return others[i].Slug < others[j].Slug })
		if len(others) > 0 && others[0].FilePath == item.FilePath {
			return []lint.Result{{
				Message:    fmt.Sprintf("translation key %q has no default-locale counterpart", item.TranslationKey),
				Suggestion: "add the default-locale version of this content",
			}}
		}
	}
	return nil
}
