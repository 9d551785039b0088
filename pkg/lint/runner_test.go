package lint_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/testutil"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func newRunContext(t *testing.T, items []*content.Item, excluded map[string]bool) *lint.Context {
	t.Helper()
	cfg := lint.ContextConfig{
		SiteURL:       "https://example.com",
		Thresholds:    lint.DefaultThresholds(),
		DefaultLocale: content.LocaleDE,
		Logger:        testutil.NewTestLogger(t),
	}
	return lint.BuildContext(cfg, items, excluded)
}

func testItems() []*content.Item {
	return []*content.Item{
		{FilePath: "a.md", Slug: "a", Type: content.TypePage, Body: "Inhalt A."},
		{FilePath: "b.md", Slug: "b", Type: content.TypePage, Body: "Inhalt B."},
	}
}

func TestRunnerOrdering(t *testing.T) {
	items := testItems()

	defs := []lint.RuleDef{
		{
			Name:     "alpha",
			Field:    "body",
			Group:    "test",
			Severity: lint.SeverityError,
			Check: func(item *content.Item, _ *lint.Context) []lint.Result {
				return []lint.Result{{Message: "alpha on " + item.FilePath}}
			},
		},
		{
			Name:     "beta",
			Field:    "body",
			Group:    "test",
			Severity: lint.SeverityWarning,
			Check: func(item *content.Item, _ *lint.Context) []lint.Result {
				if item.FilePath != "a.md" {
					return nil
				}
				return []lint.Result{{Message: "beta one"}, {Message: "beta two"}}
			},
		},
	}

	runner := lint.NewRunner(defs, newRunContext(t, items, nil), testutil.NewTestLogger(t))
	run := runner.Run(items)

	// Item order times definition order, regardless of scheduling.
	require.Len(t, run.Results, 4)
	assert.Equal(t, []string{"alpha", "beta", "beta", "alpha"}, ruleSequence(run.Results))
	assert.Equal(t, []string{"a.md", "a.md", "a.md", "b.md"}, fileSequence(run.Results))

	assert.Equal(t, 2, run.Summary.Errors)
	assert.Equal(t, 2, run.Summary.Warnings)
	assert.Equal(t, 2, run.Summary.Total)
	assert.Zero(t, run.Summary.Passed)
}

func TestRunnerStampsIdentity(t *testing.T) {
	items := testItems()[:1]

	defs := []lint.RuleDef{{
		Name:     "stamped",
		Field:    "title",
		Group:    "test",
		Severity: lint.SeverityWarning,
		Check: func(*content.Item, *lint.Context) []lint.Result {
			return []lint.Result{
				{Message: "blank identity"},
				{Message: "preset file", File: "custom.md", Severity: lint.SeverityError},
			}
		},
	}}

	runner := lint.NewRunner(defs, newRunContext(t, items, nil), testutil.NewTestLogger(t))
	run := runner.Run(items)

	require.Len(t, run.Results, 2)
	assert.Equal(t, "a.md", run.Results[0].File)
	assert.Equal(t, "stamped", run.Results[0].Rule)
	assert.Equal(t, "title", run.Results[0].Field)

	// A preset file is kept; severity always comes from the definition.
	assert.Equal(t, "custom.md", run.Results[1].File)
	assert.Equal(t, lint.SeverityWarning, run.Results[1].Severity)
}

func TestRunnerPanicIsolation(t *testing.T) {
	items := testItems()

	defs := []lint.RuleDef{
		{
			Name:     "boom",
			Group:    "test",
			Severity: lint.SeverityError,
			Check: func(item *content.Item, _ *lint.Context) []lint.Result {
				if item.FilePath == "b.md" {
					panic(fmt.Sprintf("broken on %s", item.FilePath))
				}
				return nil
			},
		},
		{
			Name:     "steady",
			Group:    "test",
			Severity: lint.SeverityWarning,
			Check: func(*content.Item, *lint.Context) []lint.Result {
				return []lint.Result{{Message: "still here"}}
			},
		},
	}

	runner := lint.NewRunner(defs, newRunContext(t, items, nil), testutil.NewTestLogger(t))
	run := runner.Run(items)

	// The panicking rule contributes nothing; the run completes and the
	// other rule still reports on both items.
	require.Len(t, run.Results, 2)
	assert.Equal(t, []string{"steady", "steady"}, ruleSequence(run.Results))
	assert.Equal(t, 2, run.Summary.Total)
}

func TestRunnerExclusions(t *testing.T) {
	items := testItems()

	defs := []lint.RuleDef{{
		Name:     "always",
		Group:    "test",
		Severity: lint.SeverityWarning,
		Check: func(*content.Item, *lint.Context) []lint.Result {
			return []lint.Result{{Message: "hit"}}
		},
	}}

	excluded := map[string]bool{"b.md": true}
	runner := lint.NewRunner(defs, newRunContext(t, items, excluded), testutil.NewTestLogger(t))
	run := runner.Run(items)

	require.Len(t, run.Results, 1)
	assert.Equal(t, "a.md", run.Results[0].File)
	assert.Equal(t, 1, run.Summary.Excluded)
	assert.Equal(t, 1, run.Summary.Total)
}

func TestRunnerDeterminism(t *testing.T) {
	items := testItems()

	defs := []lint.RuleDef{{
		Name:     "echo",
		Group:    "test",
		Severity: lint.SeverityWarning,
		Check: func(item *content.Item, _ *lint.Context) []lint.Result {
			return []lint.Result{{Message: "echo " + item.Slug}}
		},
	}}

	runner := lint.NewRunner(defs, newRunContext(t, items, nil), testutil.NewTestLogger(t))
	first := runner.Run(items)
	second := runner.Run(items)
	assert.Equal(t, first, second)
}

func ruleSequence(results []lint.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Rule
	}
	return out
}

func fileSequence(results []lint.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.File
	}
	return out
}
