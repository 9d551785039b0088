package textmetrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

func TestIsPassiveSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		locale   content.Locale
		want     bool
	}{
		{
			name:     "english regular participle",
			sentence: "The cake was baked by the baker.",
			locale:   content.LocaleEN,
			want:     true,
		},
		{
			name:     "english irregular participle",
			sentence: "The report was written in May.",
			locale:   content.LocaleEN,
			want:     true,
		},
		{
			name:     "english active voice",
			sentence: "The team ships features weekly.",
			locale:   content.LocaleEN,
			want:     false,
		},
		{
			name:     "participle outside the english window",
			sentence: "The site is very fast and optimized.",
			locale:   content.LocaleEN,
			want:     false,
		},
		{
			name:     "participle inside the english window",
			sentence: "The site is optimized for speed.",
			locale:   content.LocaleEN,
			want:     true,
		},
		{
			name:     "german werden passive",
			sentence: "Das Haus wurde im Jahr gebaut.",
			locale:   content.LocaleDE,
			want:     true,
		},
		{
			name:     "german participle before the auxiliary",
			sentence: "Gebaut wurde das Haus von einer Firma.",
			locale:   content.LocaleDE,
			want:     true,
		},
		{
			name:     "german active voice",
			sentence: "Wir bauen das Haus selbst.",
			locale:   content.LocaleDE,
			want:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textmetrics.IsPassiveSentence(tc.sentence, tc.locale))
		})
	}
}

func TestAnalyzePassiveVoice(t *testing.T) {
	allPassive := "The cake was baked. The bread was eaten."
	stats := textmetrics.AnalyzePassiveVoice(allPassive, content.LocaleEN)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.Passive)
	assert.InDelta(t, 1.0, stats.Ratio, 1e-9)

	allActive := "We bake bread. We eat cake."
	stats = textmetrics.AnalyzePassiveVoice(allActive, content.LocaleEN)
	assert.Equal(t, 2, stats.Total)
	assert.Zero(t, stats.Passive)
	assert.Zero(t, stats.Ratio)

	assert.Zero(t, textmetrics.AnalyzePassiveVoice("", content.LocaleEN).Total)
}
