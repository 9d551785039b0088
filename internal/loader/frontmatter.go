// Package loader reads content files from the configured content paths
// and turns them into lintable items. Load errors are isolated per file:
// a file that cannot be parsed yields no item and the run continues.
package loader

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML metadata block of a content file. Unknown
// fields are ignored; content files carry plenty of theme-specific keys
// the linter has no opinion on.
type Frontmatter struct {
	Title          string    `yaml:"title"`
	Description    string    `yaml:"description"`
	Slug           string    `yaml:"slug"`
	Permalink      string    `yaml:"permalink"`
	URL            string    `yaml:"url"`
	Date           time.Time `yaml:"date"`
	Updated        time.Time `yaml:"updated"`
	Author         string    `yaml:"author"`
	Image          string    `yaml:"image"`
	ImageAlt       string    `yaml:"imageAlt"`
	Categories     []string  `yaml:"categories"`
	TranslationKey string    `yaml:"translationKey"`
	Locale         string    `yaml:"locale"`
	Draft          bool      `yaml:"draft"`
	NoIndex        bool      `yaml:"noindex"`
}

// frontmatterPattern matches a leading --- ... --- block.
var frontmatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n?`)

// FrontmatterParseError is a per-file frontmatter failure.
type FrontmatterParseError struct {
	File    string
	Message string
}

func (e *FrontmatterParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// ExtractFrontmatter splits a markdown file into its parsed metadata and
// body. A file without a frontmatter block returns an empty Frontmatter
// and the full content as body.
func ExtractFrontmatter(raw string) (*Frontmatter, string, error) {
	m := frontmatterPattern.FindStringSubmatch(raw)
	if m == nil {
		return &Frontmatter{}, raw, nil
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
		return nil, "", &FrontmatterParseError{Message: fmt.Sprintf("invalid frontmatter: %v", err)}
	}
	body := strings.TrimPrefix(raw, m[0])
	return &fm, body, nil
}
