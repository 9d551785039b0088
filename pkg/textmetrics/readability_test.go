package textmetrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func TestReadabilityScore(t *testing.T) {
	assert.Zero(t, textmetrics.ReadabilityScore("", content.LocaleEN))

	// Short monosyllabic sentences push the raw score past 100; it clamps.
	easy := "The cat sat. The dog ran."
	assert.InDelta(t, 100, textmetrics.ReadabilityScore(easy, content.LocaleEN), 1e-9)

	// A single sentence of long compounds drives the raw score negative.
	hard := "Verwaltungsmodernisierung beschleunigt Digitalisierungsvorhaben."
	assert.Zero(t, textmetrics.ReadabilityScore(hard, content.LocaleDE))
}

func TestInterpretReadability(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		locale content.Locale
		want   string
	}{
		{name: "english standard", score: 65, locale: content.LocaleEN, want: "standard"},
		{name: "same score reads easier in german", score: 65, locale: content.LocaleDE, want: "easy"},
		{name: "english very easy", score: 92, locale: content.LocaleEN, want: "very easy"},
		{name: "english fairly difficult", score: 45, locale: content.LocaleEN, want: "fairly difficult"},
		{name: "german difficult", score: 25, locale: content.LocaleDE, want: "difficult"},
		{name: "german very difficult", score: 5, locale: content.LocaleDE, want: "very difficult"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textmetrics.InterpretReadability(tc.score, tc.locale))
		})
	}
}

func TestIsComplexWord(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		locale content.Locale
		want   bool
	}{
		{name: "long rare english word", word: "peregrination", locale: content.LocaleEN, want: true},
		{name: "short word never complex", word: "deeply", locale: content.LocaleEN, want: false},
		{name: "common word excluded", word: "information", locale: content.LocaleEN, want: false},
		{name: "capitalized english word treated as proper noun", word: "Peregrination", locale: content.LocaleEN, want: false},
		{name: "german noun capitalization carries no signal", word: "Katastrophenschutz", locale: content.LocaleDE, want: true},
		{name: "ordinary german word under the length floor", word: "gebäude", locale: content.LocaleDE, want: false},
		{name: "length floor counts letters not bytes", word: "größenwahn", locale: content.LocaleDE, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textmetrics.IsComplexWord(tc.word, tc.locale))
		})
	}
}

func TestTypeTokenRatio(t *testing.T) {
	assert.InDelta(t, 0.5, textmetrics.TypeTokenRatio([]string{"go", "Go", "run", "RUN"}), 1e-9)
	assert.InDelta(t, 1.0, textmetrics.TypeTokenRatio([]string{"one", "two"}), 1e-9)
	assert.Zero(t, textmetrics.TypeTokenRatio(nil))
}
