package seo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/testutil"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"

	// Register the seo rules.
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/seo"
)

func buildRule(t *testing.T, name string) lint.RuleDef {
	t.Helper()
	defs, err := lint.BuildRegistry(&lint.Params{DefaultLocale: content.LocaleDE}, nil)
	require.NoError(t, err)
	for _, d := range defs {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("rule %q not registered", name)
	return lint.RuleDef{}
}

func newContext(t *testing.T, items ...*content.Item) *lint.Context {
	t.Helper()
	cfg := lint.ContextConfig{
		SiteURL:       "https://example.com",
		Thresholds:    lint.DefaultThresholds(),
		DefaultLocale: content.LocaleDE,
		Logger:        testutil.NewTestLogger(t),
	}
	return lint.BuildContext(cfg, items, nil)
}

func TestTitleLengthBoundaries(t *testing.T) {
	rule := buildRule(t, "title-length")

	tests := []struct {
		name      string
		title     string
		wantCount int
		wantParts []string
	}{
		{name: "exactly at the maximum", title: strings.Repeat("a", 60), wantCount: 0},
		{name: "one over the maximum", title: strings.Repeat("a", 61), wantCount: 1, wantParts: []string{"61", "60"}},
		{name: "exactly at the minimum", title: strings.Repeat("a", 30), wantCount: 0},
		{name: "one under the minimum", title: strings.Repeat("a", 29), wantCount: 1, wantParts: []string{"29", "30"}},
		{name: "length counts runes, not bytes", title: strings.Repeat("ü", 60), wantCount: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := &content.Item{Title: tc.title, Slug: "post", Type: content.TypePage, FilePath: "post.md"}
			results := rule.Check(item, newContext(t, item))
			require.Len(t, results, tc.wantCount)
			for _, part := range tc.wantParts {
				assert.Contains(t, results[0].Message, part)
			}
		})
	}
}

func TestTitleRequired(t *testing.T) {
	required := buildRule(t, "title-required")
	length := buildRule(t, "title-length")

	item := &content.Item{Slug: "post", Type: content.TypePage, FilePath: "post.md"}
	ctx := newContext(t, item)

	results := required.Check(item, ctx)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "missing title")

	// The length rule leaves the missing case to title-required.
	assert.Empty(t, length.Check(item, ctx))
}

func TestSlugFormat(t *testing.T) {
	rule := buildRule(t, "slug-format")

	tests := []struct {
		name      string
		slug      string
		wantCount int
	}{
		{name: "lowercase hyphenated", slug: "my-post-2024", wantCount: 0},
		{name: "uppercase rejected", slug: "My-Post", wantCount: 1},
		{name: "underscore rejected", slug: "my_post", wantCount: 1},
		{name: "double hyphen rejected", slug: "my--post", wantCount: 1},
		{name: "empty slug is someone else's problem", slug: "", wantCount: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := &content.Item{Title: "Ein Titel", Slug: tc.slug, Type: content.TypePage, FilePath: "post.md"}
			results := rule.Check(item, newContext(t, item))
			assert.Len(t, results, tc.wantCount)
		})
	}
}

func TestSlugLength(t *testing.T) {
	rule := buildRule(t, "slug-length")

	at := &content.Item{Slug: strings.Repeat("a", 75), Type: content.TypePage, FilePath: "a.md"}
	assert.Empty(t, rule.Check(at, newContext(t, at)))

	over := &content.Item{Slug: strings.Repeat("a", 76), Type: content.TypePage, FilePath: "b.md"}
	results := rule.Check(over, newContext(t, over))
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "76")
	assert.Contains(t, results[0].Message, "75")
}
