package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/geo"
)

func TestIsQuestionHeading(t *testing.T) {
	tests := []struct {
		name    string
		heading string
		locale  content.Locale
		want    bool
	}{
		{name: "question mark", heading: "Pricing?", locale: content.LocaleEN, want: true},
		{name: "english question word", heading: "How it works", locale: content.LocaleEN, want: true},
		{name: "german question word", heading: "Wie funktioniert das", locale: content.LocaleDE, want: true},
		{name: "plain english heading", heading: "Pricing", locale: content.LocaleEN, want: false},
		{name: "plain german heading", heading: "Überblick", locale: content.LocaleDE, want: false},
		{name: "empty heading", heading: "  ", locale: content.LocaleDE, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geo.IsQuestionHeading(tc.heading, tc.locale))
		})
	}
}

func TestQuestionHeadingRatio(t *testing.T) {
	body := `# Guide

## What is GEO?

Text.

## Setup

## Pricing

## Tools

## Review
`
	ratio, total := geo.QuestionHeadingRatio(body, content.LocaleEN)
	assert.Equal(t, 5, total)
	assert.InDelta(t, 0.2, ratio, 1e-9)

	// The H1 never participates.
	ratio, total = geo.QuestionHeadingRatio("# Only a title\n\nBody.", content.LocaleEN)
	assert.Zero(t, total)
	assert.Zero(t, ratio)
}
