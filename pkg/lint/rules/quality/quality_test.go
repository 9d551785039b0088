package quality_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/testutil"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"

	// Register the quality rules.
	_ "github.com/leapstack-labs/sitelint/pkg/lint/rules/quality"
)

func buildDefs(t *testing.T) []lint.RuleDef {
	t.Helper()
	defs, err := lint.BuildRegistry(&lint.Params{DefaultLocale: content.LocaleDE}, nil)
	require.NoError(t, err)
	return defs
}

func findRule(t *testing.T, defs []lint.RuleDef, name string) lint.RuleDef {
	t.Helper()
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

func TestSentenceLengthRule(t *testing.T) {
	// 350 words without a single sentence boundary: one giant sentence
	// that breaks both the average and the maximum bound.
	body := strings.TrimSpace(strings.Repeat("wort eins zwei drei vier ", 70))
	item := &content.Item{FilePath: "long.md", Slug: "long", Type: content.TypePage, Body: body}

	rule := findRule(t, buildDefs(t), "sentence-length")
	results := rule.Check(item, newContext(t, item))

	require.Len(t, results, 2)
	assert.Contains(t, results[0].Message, "average sentence length")
	assert.Contains(t, results[0].Message, "20")
	assert.Contains(t, results[1].Message, "longest sentence")
	assert.Contains(t, results[1].Message, "40")
}

func TestWordFloorSilencesQualityRules(t *testing.T) {
	// Well below the 300-word floor: even terrible prose reports nothing.
	item := &content.Item{FilePath: "short.md", Slug: "short", Type: content.TypePage,
		Body: "Kurz. Kurz. Kurz. Kurz."}
	ctx := newContext(t, item)

	for _, def := range buildDefs(t) {
		if def.Group != "quality" {
			continue
		}
		assert.Empty(t, def.Check(item, ctx), "rule %s fired below the word floor", def.Name)
	}
}

func TestParagraphRepetitionRule(t *testing.T) {
	// Two byte-identical paragraphs, long enough to clear the word floor,
	// separated by section headings. The headings must not count as
	// paragraphs and water down the similarity score.
	para := strings.TrimSpace(strings.Repeat(
		"Viele Teams unterschätzen die Pflege alter Inhalte deutlich. ", 20))
	body := "## Erster Abschnitt\n\n" + para +
		"\n\n## Zweiter Abschnitt\n\n" + para
	item := &content.Item{FilePath: "doppelt.md", Slug: "doppelt", Type: content.TypePage, Body: body}

	rule := findRule(t, buildDefs(t), "paragraph-repetition")
	results := rule.Check(item, newContext(t, item))

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, "similarity")
}

func TestSentenceBeginningsRule(t *testing.T) {
	// Enough filler to clear the word floor. Alternating openers keep the
	// filler itself run-free; the tail opens three times with the same word.
	filler := strings.TrimSpace(strings.Repeat(
		"Alpha beta gamma delta epsilon. Beta gamma delta epsilon zeta. ", 30))
	body := filler + " Kunden zahlen gerne. Kunden bleiben lange. Kunden empfehlen uns."
	item := &content.Item{FilePath: "runs.md", Slug: "runs", Type: content.TypePage, Body: body}

	rule := findRule(t, buildDefs(t), "sentence-beginnings")
	results := rule.Check(item, newContext(t, item))

	require.Len(t, results, 1)
	assert.Contains(t, results[0].Message, `"kunden"`)
	assert.Contains(t, results[0].Message, "3 consecutive")
}
