package textmetrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func TestAnalyzeSentences(t *testing.T) {
	stats := textmetrics.AnalyzeSentences("One two three. One two three four five.")
	assert.Equal(t, 2, stats.Count)
	assert.InDelta(t, 4.0, stats.Mean, 1e-9)
	assert.Equal(t, 5, stats.Max)
	// Population stdev of {3,5} is 1, mean 4: coefficient 0.25.
	assert.InDelta(t, 0.25, stats.Variation, 1e-9)

	single := textmetrics.AnalyzeSentences("Just one sentence here.")
	assert.Equal(t, 1, single.Count)
	assert.Zero(t, single.Variation)

	assert.Zero(t, textmetrics.AnalyzeSentences("").Count)
}

func TestFindBeginningRuns(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		locale   content.Locale
		wantWord string
		wantLen  int
	}{
		{
			name:     "three identical openers",
			text:     "React is fast. React is small. React is simple.",
			locale:   content.LocaleEN,
			wantWord: "react",
			wantLen:  3,
		},
		{
			name:     "function word skipped",
			text:     "The system works. The system scales. The system fails.",
			locale:   content.LocaleEN,
			wantWord: "system",
			wantLen:  3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runs := textmetrics.FindBeginningRuns(tc.text, tc.locale)
			require.Len(t, runs, 1)
			assert.Equal(t, tc.wantWord, runs[0].Word)
			assert.Equal(t, tc.wantLen, runs[0].Count)
			assert.Zero(t, runs[0].StartIndex)
		})
	}

	t.Run("two repeats are not a run", func(t *testing.T) {
		runs := textmetrics.FindBeginningRuns("React is fast. React is small. It differs.", content.LocaleEN)
		assert.Empty(t, runs)
	})
}

func TestTransitionRatio(t *testing.T) {
	got := textmetrics.TransitionRatio("However, the setup is quick. The rest follows.", content.LocaleEN)
	assert.InDelta(t, 0.5, got, 1e-9)

	got = textmetrics.TransitionRatio("For example, this helps. Nothing else does.", content.LocaleEN)
	assert.InDelta(t, 0.5, got, 1e-9)

	assert.Zero(t, textmetrics.TransitionRatio("Plain statement. Another plain statement.", content.LocaleEN))
	assert.Zero(t, textmetrics.TransitionRatio("", content.LocaleEN))
}
