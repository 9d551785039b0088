package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/pkg/geo"
)

func TestFindStatistics(t *testing.T) {
	text := "Der Umsatz stieg um 42 % auf 1.200.000 Euro, eine 3x Steigerung. " +
		"Rund 2 Millionen Kunden zahlten $99."

	stats := geo.FindStatistics(text)
	require.NotEmpty(t, stats)

	var matched []string
	for _, s := range stats {
		matched = append(matched, s.Text)
	}
	assert.Contains(t, matched, "42 %")
	assert.Contains(t, matched, "3x")
	assert.Contains(t, matched, "$99")

	// Matches come back sorted by offset.
	for i := 1; i < len(stats); i++ {
		assert.Less(t, stats[i-1].Start, stats[i].Start)
	}

	assert.Empty(t, geo.FindStatistics("Keine Zahlenangaben im Text."))
}

func TestFindContextlessStatistics(t *testing.T) {
	t.Run("attributed statistic passes", func(t *testing.T) {
		body := "Laut einer Studie stieg die Conversion um 25 %."
		assert.Empty(t, geo.FindContextlessStatistics(body))
	})

	t.Run("year counts as context", func(t *testing.T) {
		body := "Die Conversion stieg 2024 um 25 %."
		assert.Empty(t, geo.FindContextlessStatistics(body))
	})

	t.Run("bare percentage flagged", func(t *testing.T) {
		body := "Die Conversion stieg um 25 %."
		found := geo.FindContextlessStatistics(body)
		require.Len(t, found, 1)
		assert.Equal(t, "25 %", found[0].Statistic)
	})
}

func TestHasTable(t *testing.T) {
	table := "| Spalte A | Spalte B |\n|----------|----------|\n| 1 | 2 |\n"
	assert.True(t, geo.HasTable(table))

	assert.False(t, geo.HasTable("Nur Fließtext ohne Tabelle."))

	fenced := "```\n| a | b |\n|---|---|\n```\n"
	assert.False(t, geo.HasTable(fenced))
}

func TestCountStructuralElements(t *testing.T) {
	body := "Intro.\n\n" +
		"- Punkt eins\n" +
		"1. Schritt eins\n" +
		"> Ein Zitat\n" +
		"```\ncode\n```\n" +
		"| a | b |\n|---|---|\n"

	s := geo.CountStructuralElements(body)
	assert.True(t, s.Unordered)
	assert.True(t, s.Ordered)
	assert.True(t, s.Blockquote)
	assert.True(t, s.CodeBlock)
	assert.True(t, s.Table)
	assert.Equal(t, 5, s.Present())

	assert.Zero(t, geo.CountStructuralElements("Nur Text.").Present())
}

func TestExpectedStructuralElements(t *testing.T) {
	assert.Zero(t, geo.ExpectedStructuralElements(400))
	assert.Equal(t, 1, geo.ExpectedStructuralElements(500))
	assert.Equal(t, 3, geo.ExpectedStructuralElements(1700))
	assert.Equal(t, 5, geo.ExpectedStructuralElements(10000))
}

func TestSplitSections(t *testing.T) {
	body := "Einleitung vor dem ersten Abschnitt.\n\n" +
		"## Erster Abschnitt\n\nInhalt eins.\n\n" +
		"## Zweiter Abschnitt\n\nInhalt zwei.\n"

	sections := geo.SplitSections(body)
	require.Len(t, sections, 3)

	assert.True(t, sections[0].Lead)
	assert.Equal(t, "Erster Abschnitt", sections[1].Heading.Text)
	assert.Equal(t, "Inhalt eins.", sections[1].FirstSentence())
	assert.Equal(t, "Zweiter Abschnitt", sections[2].Heading.Text)

	assert.Nil(t, geo.SplitSections("   \n"))
}
