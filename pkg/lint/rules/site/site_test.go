package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/testutil"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"

	// Register the site rules.
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/site"
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

func newContext(t *testing.T, items []*content.Item) *lint.Context {
	t.Helper()
	cfg := lint.ContextConfig{
		SiteURL:       "https://example.com",
		Thresholds:    lint.DefaultThresholds(),
		DefaultLocale: content.LocaleDE,
		Logger:        testutil.NewTestLogger(t),
	}
	return lint.BuildContext(cfg, items, nil)
}

func TestDuplicateTitle(t *testing.T) {
	items := []*content.Item{
		{FilePath: "a.md", Slug: "a", Title: "Gleicher Titel", Type: content.TypePage},
		{FilePath: "b.md", Slug: "b", Title: "  gleicher   Titel ", Type: content.TypePage},
		{FilePath: "c.md", Slug: "c", Title: "Eigener Titel", Type: content.TypePage},
	}
	ctx := newContext(t, items)
	rule := buildRule(t, "duplicate-title")

	// Case and whitespace differences do not hide the duplicate.
	results := rule.Check(items[0], ctx)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "b.md")

	assert.Empty(t, rule.Check(items[2], ctx))
}

func TestDuplicateDescription(t *testing.T) {
	items := []*content.Item{
		{FilePath: "a.md", Slug: "a", Description: "Eine Beschreibung.", Type: content.TypePage},
		{FilePath: "b.md", Slug: "b", Description: "Eine Beschreibung.", Type: content.TypePage},
		{FilePath: "c.md", Slug: "c", Type: content.TypePage},
	}
	ctx := newContext(t, items)
	rule := buildRule(t, "duplicate-description")

	results := rule.Check(items[1], ctx)
	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "a.md")

	// An empty description is never a duplicate.
	assert.Empty(t, rule.Check(items[2], ctx))
}

func TestTranslationParity(t *testing.T) {
	items := []*content.Item{
		// k1: default locale only.
		{FilePath: "k1-de.md", Slug: "k1-de", Locale: "de", TranslationKey: "k1", Type: content.TypePage},
		// k2: complete pair.
		{FilePath: "k2-de.md", Slug: "k2-de", Locale: "de", TranslationKey: "k2", Type: content.TypePage},
		{FilePath: "k2-en.md", Slug: "k2-en", Locale: "en", TranslationKey: "k2", Type: content.TypePage},
		// k3: non-default locale only, two members.
		{FilePath: "k3-beta.md", Slug: "beta", Locale: "en", TranslationKey: "k3", Type: content.TypePage},
		{FilePath: "k3-alpha.md", Slug: "alpha", Locale: "en", TranslationKey: "k3", Type: content.TypePage},
	}
	ctx := newContext(t, items)
	rule := buildRule(t, "translation-parity")

	t.Run("default locale without counterpart warns", func(t *testing.T) {
		results := rule.Check(items[0], ctx)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Message, "k1")
		assert.Contains(t, results[0].Message, "non-default")
	})

	t.Run("complete pair passes", func(t *testing.T) {
		assert.Empty(t, rule.Check(items[1], ctx))
		assert.Empty(t, rule.Check(items[2], ctx))
	})

	t.Run("orphan group reports through first slug only", func(t *testing.T) {
		// "alpha" sorts before "beta": only that member warns.
		assert.Empty(t, rule.Check(items[3], ctx))
		results := rule.Check(items[4], ctx)
		require.Len(t, results, 1)
		assert.Contains(t, results[0].Message, "k3")
	})

	t.Run("no translation key means no opinion", func(t *testing.T) {
		item := &content.Item{FilePath: "plain.md", Slug: "plain", Type: content.TypePage}
		assert.Empty(t, rule.Check(item, ctx))
	})
}
