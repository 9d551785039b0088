package lint

// FieldBounds limits the character length of a metadata field.
type FieldBounds struct {
	MinLength int `koanf:"minLength"`
	MaxLength int `koanf:"maxLength"`
}

// SlugBounds limits slug shape.
type SlugBounds struct {
	MaxLength int `koanf:"maxLength"`
}

// ContentBounds holds the body-level quality thresholds.
type ContentBounds struct {
	MinWords               int     `koanf:"minWords"`
	MaxAvgSentenceWords    int     `koanf:"maxAvgSentenceWords"`
	MaxSentenceWords       int     `koanf:"maxSentenceWords"`
	MinReadability         float64 `koanf:"minReadability"`
	MaxPassiveRatio        float64 `koanf:"maxPassiveRatio"`
	MaxComplexWordRatio    float64 `koanf:"maxComplexWordRatio"`
	MinTransitionRatio     float64 `koanf:"minTransitionRatio"`
	MaxParagraphSimilarity float64 `koanf:"maxParagraphSimilarity"`
	MinSentenceVariation   float64 `koanf:"minSentenceVariation"`
	MinTypeTokenRatio      float64 `koanf:"minTypeTokenRatio"`
}

// Thresholds is one fully resolved threshold document. Rules read these
// through the context and never inspect override documents directly.
type Thresholds struct {
	Title       FieldBounds   `koanf:"title"`
	Description FieldBounds   `koanf:"description"`
	Slug        SlugBounds    `koanf:"slug"`
	Content     ContentBounds `koanf:"content"`
}

// ThresholdOverride is a per-content-type override document. Each group is
// optional; a present group replaces the base group wholesale.
type ThresholdOverride struct {
	Title       *FieldBounds   `koanf:"title"`
	Description *FieldBounds   `koanf:"description"`
	Slug        *SlugBounds    `koanf:"slug"`
	Content     *ContentBounds `koanf:"content"`
}

// ResolveThresholds merges an override into a base document group by
// group. The title, description, slug and content groups override
// independently.
func ResolveThresholds(base Thresholds, override *ThresholdOverride) Thresholds {
	if override == nil {
		return base
	}
	resolved := base
	if override.Title != nil {
		resolved.Title = *override.Title
	}
	if override.Description != nil {
		resolved.Description = *override.Description
	}
	if override.Slug != nil {
		resolved.Slug = *override.Slug
	}
	if override.Content != nil {
		resolved.Content = *override.Content
	}
	return resolved
}

// DefaultThresholds returns the baseline threshold document.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Title:       FieldBounds{MinLength: 30, MaxLength: 60},
		Description: FieldBounds{MinLength: 120, MaxLength: 160},
		Slug:        SlugBounds{MaxLength: 75},
		Content: ContentBounds{
			MinWords:               300,
			MaxAvgSentenceWords:    20,
			MaxSentenceWords:       40,
			MinReadability:         40,
			MaxPassiveRatio:        0.2,
			MaxComplexWordRatio:    0.15,
			MinTransitionRatio:     0.2,
			MaxParagraphSimilarity: 0.3,
			MinSentenceVariation:   0.3,
			MinTypeTokenRatio:      0.35,
		},
	}
}
