package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/sitelint/pkg/lint"
)

func TestResolveThresholds(t *testing.T) {
	base := lint.DefaultThresholds()

	t.Run("nil override returns the base", func(t *testing.T) {
		assert.Equal(t, base, lint.ResolveThresholds(base, nil))
	})

	t.Run("groups override independently", func(t *testing.T) {
		resolved := lint.ResolveThresholds(base, &lint.ThresholdOverride{
			Title: &lint.FieldBounds{MinLength: 10, MaxLength: 20},
		})
		assert.Equal(t, lint.FieldBounds{MinLength: 10, MaxLength: 20}, resolved.Title)
		assert.Equal(t, base.Description, resolved.Description)
		assert.Equal(t, base.Slug, resolved.Slug)
		assert.Equal(t, base.Content, resolved.Content)
	})

	t.Run("a present group replaces wholesale", func(t *testing.T) {
		resolved := lint.ResolveThresholds(base, &lint.ThresholdOverride{
			Content: &lint.ContentBounds{MinWords: 100},
		})
		assert.Equal(t, 100, resolved.Content.MinWords)
		// Unset fields of the override group do not inherit from the base.
		assert.Zero(t, resolved.Content.MaxAvgSentenceWords)
		assert.Zero(t, resolved.Content.MinReadability)
	})
}

func TestDefaultThresholds(t *testing.T) {
	th := lint.DefaultThresholds()
	assert.Equal(t, lint.FieldBounds{MinLength: 30, MaxLength: 60}, th.Title)
	assert.Equal(t, lint.FieldBounds{MinLength: 120, MaxLength: 160}, th.Description)
	assert.Equal(t, 75, th.Slug.MaxLength)
	assert.Equal(t, 300, th.Content.MinWords)
}
