package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/internal/loader"
	"github.com/leapstack-labs/sitelint/internal/testutil"
	"github.com/leapstack-labs/sitelint/pkg/content"
)

func writeContentFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "erster-beitrag.md", `---
title: Erster Beitrag
---
Inhalt des ersten Beitrags.
`)
	writeContentFile(t, dir, "zweiter-beitrag.md", `---
title: Zweiter Beitrag
slug: zweiter
permalink: /custom/zweiter
categories: [intern]
---
Inhalt.
`)
	writeContentFile(t, dir, "index.md", "# Listing page\n")
	writeContentFile(t, dir, "notes.txt", "not content\n")
	writeContentFile(t, dir, "kaputt.md", "---\ntitle: [broken\n---\nInhalt.\n")

	cfg := &config.Config{
		SiteURL: "https://example.com",
		ContentPaths: []config.ContentPath{
			{Dir: dir, Type: "blog", URLPrefix: "/blog", DefaultLocale: "de"},
		},
		ExcludeCategories: []string{"Intern"},
	}

	res := loader.Load(cfg, testutil.NewTestLogger(t))

	// index.md and notes.txt are skipped silently; kaputt.md fails.
	require.Len(t, res.Items, 2)
	assert.Equal(t, 1, res.Failed)

	bySlug := make(map[string]*content.Item)
	for _, it := range res.Items {
		bySlug[it.Slug] = it
	}

	first := bySlug["erster-beitrag"]
	require.NotNil(t, first, "slug defaults to the file name")
	assert.Equal(t, "/blog/erster-beitrag", first.Permalink)
	assert.Equal(t, content.TypeBlog, first.Type)
	assert.Equal(t, "de", first.Locale)

	second := bySlug["zweiter"]
	require.NotNil(t, second)
	assert.Equal(t, "/custom/zweiter", second.Permalink)

	// Excluded items stay in the set but are marked.
	assert.True(t, res.ExcludedFiles[second.FilePath])
	assert.False(t, res.ExcludedFiles[first.FilePath])
}
