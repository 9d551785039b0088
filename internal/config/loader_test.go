package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/internal/config"
	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func writeConfigFile(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0o755))
	path := filepath.Join(dir, "sitelint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
siteUrl: https://example.com
contentPaths:
  - dir: content
    type: blog
    urlPrefix: /blog
rules:
  title-length: "off"
thresholds:
  title:
    minLength: 20
    maxLength: 70
geo:
  brandName: Acme
  enabledContentTypes: [blog]
`)

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, filepath.Dir(path), cfg.ProjectRoot)

	// Relative content dirs resolve against the project root.
	require.Len(t, cfg.ContentPaths, 1)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "content"), cfg.ContentPaths[0].Dir)
	assert.Equal(t, "blog", cfg.ContentPaths[0].Type)

	// Defaults fill the gaps the file leaves open.
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.Equal(t, "de", cfg.I18N.DefaultLocale)

	assert.Equal(t, "off", cfg.Rules["title-length"])
	assert.Equal(t, "Acme", cfg.Geo.BrandName)
	assert.Equal(t, []content.ContentType{content.TypeBlog}, cfg.GeoTypes())

	th := cfg.ResolvedThresholds()
	assert.Equal(t, lint.FieldBounds{MinLength: 20, MaxLength: 70}, th.Title)
	// Untouched groups keep their built-in values.
	assert.Equal(t, lint.DefaultThresholds().Description, th.Description)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
siteUrl: https://example.com
contentPaths:
  - dir: content
    type: page
`)
	t.Setenv("SITELINT_OUTPUT", "json")

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoadConfigValidationFailure(t *testing.T) {
	path := writeConfigFile(t, `
contentPaths:
  - dir: content
    type: page
`)
	_, err := config.LoadConfig(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "siteUrl is required")
}
