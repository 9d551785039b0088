// Package content defines the normalized document model shared by the
// loader and the lint engine.
package content

import "time"

// ContentType classifies a document by its editorial role.
type ContentType string

// Known content types.
const (
	TypeBlog    ContentType = "blog"
	TypePage    ContentType = "page"
	TypeProject ContentType = "project"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case TypeBlog, TypePage, TypeProject:
		return true
	}
	return false
}

// Item is a single normalized document. The loader creates one Item per
// source file; items are never mutated after creation.
type Item struct {
	Title       string
	Slug        string
	Description string
	Permalink   string
	Body        string // raw markup
	Type        ContentType
	Locale      string // BCP 47-ish tag from frontmatter; empty means site default

	Date      time.Time
	UpdatedAt time.Time

	Author   string
	Image    string
	ImageAlt string

	Categories     []string
	TranslationKey string

	Draft   bool
	NoIndex bool

	// FilePath identifies the source file in violation output.
	FilePath string
}

// EffectiveDate returns UpdatedAt when set, otherwise Date.
func (it *Item) EffectiveDate() time.Time {
	if !it.UpdatedAt.IsZero() {
		return it.UpdatedAt
	}
	return it.Date
}

// HasCategory reports whether the item lists the given category.
func (it *Item) HasCategory(category string) bool {
	for _, c := range it.Categories {
		if c == category {
			return true
		}
	}
	return false
}
