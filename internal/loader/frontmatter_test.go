package loader_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/loader"
)

func TestExtractFrontmatter(t *testing.T) {
	raw := `---
title: Ein Leitfaden
description: Was dieser Leitfaden abdeckt.
slug: ein-leitfaden
date: 2024-05-01
categories:
  - ratgeber
translationKey: leitfaden
layout: post
---
# Überschrift

Der eigentliche Inhalt.
`
	fm, body, err := loader.ExtractFrontmatter(raw)
	require.NoError(t, err)

	assert.Equal(t, "Ein Leitfaden", fm.Title)
	assert.Equal(t, "ein-leitfaden", fm.Slug)
	assert.Equal(t, []string{"ratgeber"}, fm.Categories)
	assert.Equal(t, "leitfaden", fm.TranslationKey)
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), fm.Date)

	// Unknown keys like layout are ignored, the body starts after the block.
	assert.Equal(t, "# Überschrift\n\nDer eigentliche Inhalt.\n", body)
}

func TestExtractFrontmatterWithoutBlock(t *testing.T) {
	raw := "# Nur Inhalt\n\nKein Metadatenblock.\n"
	fm, body, err := loader.ExtractFrontmatter(raw)
	require.NoError(t, err)
	assert.Equal(t, &loader.Frontmatter{}, fm)
	assert.Equal(t, raw, body)
}

func TestExtractFrontmatterInvalidYAML(t *testing.T) {
	raw := "---\ntitle: [unclosed\n---\nInhalt.\n"
	_, _, err := loader.ExtractFrontmatter(raw)
	require.Error(t, err)

	var parseErr *loader.FrontmatterParseError
	assert.True(t, errors.As(err, &parseErr))
}
